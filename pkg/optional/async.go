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

// MapAsync applies f to o's value on a separate goroutine and returns
// immediately; the returned channel delivers the mapped Option once f
// completes. If o is empty, the channel already holds an empty Option
// and no goroutine is started.
//
// The channel is buffered, so the goroutine never blocks waiting for a
// receiver.
func MapAsync[T, U any](o Option[T], f func(T) U) <-chan Option[U] {
	ch := make(chan Option[U], 1)
	v, ok := o.Get()
	if !ok {
		ch <- None[U]()
		return ch
	}
	go func() {
		ch <- Some(f(v))
	}()
	return ch
}

// BindAsync applies f to o's value on a separate goroutine and returns
// immediately; the returned channel delivers f's result once it
// completes. If o is empty, the channel already holds an empty Option
// and no goroutine is started.
func BindAsync[T, U any](o Option[T], f func(T) Option[U]) <-chan Option[U] {
	ch := make(chan Option[U], 1)
	v, ok := o.Get()
	if !ok {
		ch <- None[U]()
		return ch
	}
	go func() {
		ch <- f(v)
	}()
	return ch
}
