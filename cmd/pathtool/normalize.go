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

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"tern.dev/baselib/pkg/urlpath"
)

// normalizeCmd implements subcommands.Command for the "normalize" command.
type normalizeCmd struct {
	format string
}

// Name implements subcommands.Command.Name.
func (*normalizeCmd) Name() string {
	return "normalize"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*normalizeCmd) Synopsis() string {
	return "Print request paths with empty and .. segments removed."
}

// Usage implements subcommands.Command.Usage.
func (*normalizeCmd) Usage() string {
	return `normalize [options] <path> [<path>...] - print normalized request paths.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *normalizeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Output format (text, json); overrides the config file.")
}

// Execute implements subcommands.Command.Execute.
func (c *normalizeCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config)
	format := flagOr(c.format, conf.Format)
	out, ok := outputMap[format]
	if !ok {
		logrus.Errorf("unsupported output format %q", format)
		return subcommands.ExitUsageError
	}
	if err := out(os.Stdout, runNormalize(f.Args())); err != nil {
		logrus.Errorf("cannot write output: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runNormalize cleans each path.
func runNormalize(paths []string) []result {
	results := make([]result, 0, len(paths))
	for _, p := range paths {
		results = append(results, result{Input: p, Output: []string{urlpath.Clean(p)}})
	}
	return results
}
