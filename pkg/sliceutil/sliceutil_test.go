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

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Map: got %q, wanted %q", got, want)
	}
	if got := Map(nil, strconv.Itoa); len(got) != 0 {
		t.Errorf("Map(nil): got %q, wanted an empty slice", got)
	}
}

func TestForEachOrder(t *testing.T) {
	var got []int
	ForEach([]int{3, 1, 2}, func(v int) { got = append(got, v) })
	if want := []int{3, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("ForEach visited %v, wanted %v", got, want)
	}
}

func TestFold(t *testing.T) {
	sum := Fold([]int{1, 2, 3, 4}, 0, func(acc, v int) int { return acc + v })
	if sum != 10 {
		t.Errorf("Fold sum: got %v, wanted 10", sum)
	}
	// Left-to-right order is observable through a non-commutative
	// accumulator.
	cat := Fold([]string{"a", "b", "c"}, "", func(acc, v string) string { return acc + v })
	if cat != "abc" {
		t.Errorf("Fold concat: got %q, wanted %q", cat, "abc")
	}
	if got := Fold(nil, 42, func(acc, v int) int { return acc + v }); got != 42 {
		t.Errorf("Fold(nil): got %v, wanted 42", got)
	}
}

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }
	got := Filter([]int{1, 2, 3, 4, 5, 6}, even)
	if want := []int{2, 4, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("Filter: got %v, wanted %v", got, want)
	}
	if got := Filter([]int{1, 3, 5}, even); got != nil {
		t.Errorf("Filter with nothing kept: got %v, wanted nil", got)
	}
}

func TestMapConcurrent(t *testing.T) {
	in := make([]int, 100)
	for i := range in {
		in[i] = i
	}
	got, err := MapConcurrent(in, func(v int) (int, error) { return v * v, nil })
	if err != nil {
		t.Fatalf("MapConcurrent failed: %v", err)
	}
	for i, v := range got {
		if want := i * i; v != want {
			t.Errorf("result[%d]: got %v, wanted %v", i, v, want)
		}
	}
}

func TestMapConcurrentError(t *testing.T) {
	errBoom := errors.New("boom")
	got, err := MapConcurrent([]int{1, 2, 3}, func(v int) (int, error) {
		if v == 2 {
			return 0, errBoom
		}
		return v, nil
	})
	if err != errBoom {
		t.Errorf("MapConcurrent error: got %v, wanted %v", err, errBoom)
	}
	if got != nil {
		t.Errorf("MapConcurrent results after error: got %v, wanted nil", got)
	}
}
