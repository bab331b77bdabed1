// Copyright 2025 The Tern Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Binary pathtool shows what the Tern path and string helpers make of
// its inputs. It is a debugging aid for route and header handling.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var configFile = flag.String("config", "", "TOML file with default option values.")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(normalizeCmd), "")
	subcommands.Register(new(splitCmd), "")
	subcommands.Register(new(trimCmd), "")

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	conf := defaultConfig()
	if *configFile != "" {
		var err error
		conf, err = loadConfig(*configFile)
		if err != nil {
			logrus.Fatalf("cannot load config file %q: %v", *configFile, err)
		}
	}

	os.Exit(int(subcommands.Execute(context.Background(), conf)))
}
