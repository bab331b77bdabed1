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

package main

import "github.com/BurntSushi/toml"

// config carries default option values for pathtool commands.
// Command-line flags override it per invocation.
type config struct {
	// Format is the default output format, "text" or "json".
	Format string `toml:"format"`
	// Separator is the default field separator for the trim command.
	Separator string `toml:"separator"`
}

func defaultConfig() *config {
	return &config{
		Format:    "text",
		Separator: ",",
	}
}

// loadConfig loads a pathtool config from a TOML file. Fields absent
// from the file keep their default values.
func loadConfig(path string) (*config, error) {
	c := defaultConfig()
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, err
	}
	return c, nil
}

// flagOr returns flagVal if the flag was set, falling back to the
// config file default.
func flagOr(flagVal, confVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return confVal
}
