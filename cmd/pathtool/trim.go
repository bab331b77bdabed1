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
	"unicode/utf8"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"tern.dev/baselib/pkg/strutil"
)

// trimCmd implements subcommands.Command for the "trim" command.
type trimCmd struct {
	format    string
	separator string
	skipEmpty bool
}

// Name implements subcommands.Command.Name.
func (*trimCmd) Name() string {
	return "trim"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*trimCmd) Synopsis() string {
	return "Split strings on a separator and trim whitespace from the fields."
}

// Usage implements subcommands.Command.Usage.
func (*trimCmd) Usage() string {
	return `trim [options] <string> [<string>...] - print trimmed fields, one per line.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *trimCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "", "Output format (text, json); overrides the config file.")
	f.StringVar(&c.separator, "sep", "", "Separator to split on; overrides the config file.")
	f.BoolVar(&c.skipEmpty, "skip-empty", false, "Drop fields that are empty after trimming.")
}

// Execute implements subcommands.Command.Execute.
func (c *trimCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
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
	sepStr := flagOr(c.separator, conf.Separator)
	if utf8.RuneCountInString(sepStr) != 1 {
		logrus.Errorf("separator must be a single character, got %q", sepStr)
		return subcommands.ExitUsageError
	}
	sep, _ := utf8.DecodeRuneInString(sepStr)
	if err := out(os.Stdout, runTrim(f.Args(), sep, c.skipEmpty)); err != nil {
		logrus.Errorf("cannot write output: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runTrim splits each string and trims its fields.
func runTrim(strs []string, sep rune, skipEmpty bool) []result {
	split := strutil.SplitAndTrim
	if skipEmpty {
		split = strutil.SplitAndTrimNonEmpty
	}
	results := make([]result, 0, len(strs))
	for _, s := range strs {
		results = append(results, result{Input: s, Output: split(s, sep)})
	}
	return results
}
