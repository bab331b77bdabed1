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

// Package urlpath manipulates URL request paths as ordered sequences of
// separator-delimited segments.
//
// Split, Normalize, and Join compose: routing code splits a request path
// once, normalizes the segments, and matches on the result. Clean bundles
// the three for callers that only need the rewritten path.
package urlpath

import "strings"

// Split slices path into its separator-delimited segments. The result
// includes the empty segments produced by leading, trailing, or duplicate
// separators; use Normalize to discard them.
func Split(path string) []string {
	return strings.Split(path, "/")
}

// Normalize returns segs with empty and ".." segments removed. Empty
// segments arise from duplicate separators and carry no meaning. ".."
// segments are discarded rather than resolved; a request path must never
// climb above the root it is resolved against.
//
// All other segments, including ".", pass through unchanged.
func Normalize(segs []string) []string {
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		if seg == "" || seg == ".." {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// Join concatenates segments with the path separator. It is the inverse
// of Split for normalized input.
func Join(segs []string) string {
	return strings.Join(segs, "/")
}

// Clean returns path with duplicate separators collapsed and ".."
// segments removed. A single leading separator is preserved if path is
// absolute; a trailing separator is dropped.
func Clean(path string) string {
	cleaned := Join(Normalize(Split(path)))
	if strings.HasPrefix(path, "/") {
		return "/" + cleaned
	}
	return cleaned
}
