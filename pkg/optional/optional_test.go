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

package optional

import (
	"strconv"
	"testing"
)

func TestGet(t *testing.T) {
	if v, ok := Some(42).Get(); !ok || v != 42 {
		t.Errorf("Some(42).Get(): got (%v, %v), wanted (42, true)", v, ok)
	}
	if v, ok := None[int]().Get(); ok || v != 0 {
		t.Errorf("None().Get(): got (%v, %v), wanted (0, false)", v, ok)
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var o Option[string]
	if o.Present() {
		t.Errorf("zero Option.Present(): got true, wanted false")
	}
}

func TestGetOr(t *testing.T) {
	if got := Some("x").GetOr("fallback"); got != "x" {
		t.Errorf("Some(x).GetOr: got %q, wanted %q", got, "x")
	}
	if got := None[string]().GetOr("fallback"); got != "fallback" {
		t.Errorf("None().GetOr: got %q, wanted %q", got, "fallback")
	}
}

func TestForEach(t *testing.T) {
	calls := 0
	Some(7).ForEach(func(v int) {
		calls++
		if v != 7 {
			t.Errorf("ForEach value: got %v, wanted 7", v)
		}
	})
	None[int]().ForEach(func(int) { calls++ })
	if calls != 1 {
		t.Errorf("ForEach calls: got %v, wanted 1", calls)
	}
}

func TestMap(t *testing.T) {
	got := Map(Some(42), strconv.Itoa)
	if v, ok := got.Get(); !ok || v != "42" {
		t.Errorf("Map(Some(42), Itoa): got (%q, %v), wanted (\"42\", true)", v, ok)
	}
	if Map(None[int](), strconv.Itoa).Present() {
		t.Errorf("Map(None, Itoa).Present(): got true, wanted false")
	}
}

func TestBind(t *testing.T) {
	olen := func(s string) Option[int] {
		if s == "" {
			return None[int]()
		}
		return Some(len(s))
	}
	if v, ok := Bind(Some("abc"), olen).Get(); !ok || v != 3 {
		t.Errorf("Bind(Some(abc)): got (%v, %v), wanted (3, true)", v, ok)
	}
	if Bind(Some(""), olen).Present() {
		t.Errorf("Bind(Some(\"\")).Present(): got true, wanted false")
	}
	if Bind(None[string](), olen).Present() {
		t.Errorf("Bind(None).Present(): got true, wanted false")
	}
}

func TestMapAsync(t *testing.T) {
	release := make(chan struct{})
	ch := MapAsync(Some(1), func(v int) int {
		<-release
		return v + 1
	})
	// The mapped function has not completed, so no result may be
	// available yet.
	select {
	case <-ch:
		t.Fatal("MapAsync delivered a result before the function completed")
	default:
	}
	close(release)
	if v, ok := (<-ch).Get(); !ok || v != 2 {
		t.Errorf("MapAsync result: got (%v, %v), wanted (2, true)", v, ok)
	}
}

func TestMapAsyncEmpty(t *testing.T) {
	ch := MapAsync(None[int](), func(v int) int {
		t.Error("mapped function called for an empty Option")
		return v
	})
	if (<-ch).Present() {
		t.Errorf("MapAsync(None) result.Present(): got true, wanted false")
	}
}

func TestBindAsync(t *testing.T) {
	ch := BindAsync(Some(21), func(v int) Option[int] { return Some(v * 2) })
	if v, ok := (<-ch).Get(); !ok || v != 42 {
		t.Errorf("BindAsync result: got (%v, %v), wanted (42, true)", v, ok)
	}
}

func TestBindAsyncEmpty(t *testing.T) {
	ch := BindAsync(None[int](), func(v int) Option[int] {
		t.Error("bound function called for an empty Option")
		return Some(v)
	})
	if (<-ch).Present() {
		t.Errorf("BindAsync(None) result.Present(): got true, wanted false")
	}
}
