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

package sliceutil

import "golang.org/x/sync/errgroup"

// MapConcurrent applies f to every element of s, each on its own
// goroutine, and waits for all of them. Results keep the order of s.
// If any application fails, MapConcurrent discards the results and
// returns the first error.
func MapConcurrent[T, U any](s []T, f func(T) (U, error)) ([]U, error) {
	out := make([]U, len(s))
	var errGroup errgroup.Group
	for i, v := range s {
		errGroup.Go(func() error {
			u, err := f(v)
			if err != nil {
				return err
			}
			out[i] = u
			return nil
		})
	}
	if err := errGroup.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
