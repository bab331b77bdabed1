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

// Package optional provides a container for a value that may be absent,
// with combinators for transforming it without unpacking.
//
// Option is a value type; the zero value is the empty Option.
package optional

// Option holds at most one value of type T.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Present returns true if o holds a value.
func (o Option[T]) Present() bool {
	return o.present
}

// Get returns the held value. ok is false if o is empty, in which case
// the value is T's zero value.
func (o Option[T]) Get() (value T, ok bool) {
	return o.value, o.present
}

// GetOr returns the held value, or def if o is empty.
func (o Option[T]) GetOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// ForEach calls f with the held value. It is a no-op if o is empty.
func (o Option[T]) ForEach(f func(T)) {
	if o.present {
		f(o.value)
	}
}

// Map returns an Option holding f applied to o's value, or an empty
// Option if o is empty.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// Bind returns f applied to o's value, or an empty Option if o is
// empty. Unlike Map, f itself decides whether the result is present.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}
