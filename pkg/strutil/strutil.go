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

// Package strutil provides small string helpers shared across the Tern
// tree.
package strutil

import "strings"

// SplitAndTrim splits s around each occurrence of the separator character
// and trims white space from both ends of every part. If sep never occurs
// in s, the result is a single-element slice holding the trimmed input.
func SplitAndTrim(s string, sep rune) []string {
	parts := strings.Split(s, string(sep))
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// SplitAndTrimNonEmpty is SplitAndTrim without the parts that trim to "",
// so runs of separators count as one and blank fields disappear.
func SplitAndTrimNonEmpty(s string, sep rune) []string {
	var out []string
	for _, p := range strings.Split(s, string(sep)) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
