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

// splitCmd implements subcommands.Command for the "split" command.
type splitCmd struct {
	format    string
	normalize bool
}

// Name implements subcommands.Command.Name.
func (*splitCmd) Name() string {
	return "split"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*splitCmd) Synopsis() string {
	return "Print the segments of request paths."
}

// Usage implements subcommands.Command.Usage.
func (*splitCmd) Usage() string {
	return `split [options] <path> [<path>...] - print path segments, one per line.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Output format (text, json); overrides the config file.")
	f.BoolVar(&c.normalize, "normalize", false, "Drop empty and .. segments.")
}

// Execute implements subcommands.Command.Execute.
func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
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
	if err := out(os.Stdout, runSplit(f.Args(), c.normalize)); err != nil {
		logrus.Errorf("cannot write output: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runSplit splits each path into segments, optionally normalizing them.
func runSplit(paths []string, normalize bool) []result {
	results := make([]result, 0, len(paths))
	for _, p := range paths {
		segs := urlpath.Split(p)
		if normalize {
			segs = urlpath.Normalize(segs)
		}
		results = append(results, result{Input: p, Output: segs})
	}
	return results
}
