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
	"encoding/json"
	"fmt"
	"io"
)

// A result holds what one command produced for one input string.
type result struct {
	Input  string   `json:"input"`
	Output []string `json:"output"`
}

type outputFunc func(io.Writer, []result) error

// outputMap maps output format names to output functions.
var outputMap = map[string]outputFunc{
	"text": outputText,
	"json": outputJSON,
}

// outputText writes each output string on its own line. Inputs are not
// echoed.
func outputText(w io.Writer, results []result) error {
	for _, res := range results {
		for _, s := range res.Output {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// outputJSON writes the results as a JSON array of input/output pairs.
func outputJSON(w io.Writer, results []result) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(results)
}
