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

// Package errfmt renders errors as display strings through a chain of
// registered printers.
//
// A server typically builds one Registry at startup, registers a
// printer per error family it wants rendered specially (route errors,
// upstream failures, and so on), and calls Format from its handlers
// whenever an error must be shown to a client or written to a log.
package errfmt

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// A Printer renders an error as a display string. ok is false if the
// printer does not recognize err, in which case the next printer in the
// chain is consulted.
type Printer func(err error) (string, bool)

// Registry holds a chain of error printers, consulted newest-first by
// Format. The chain only grows; printers cannot be removed.
//
// Register is a setup-time operation. Once registration is done,
// concurrent Format calls are safe since Format does not mutate the
// Registry.
type Registry struct {
	printers []Printer

	// warnLimit throttles warnings about panicking printers, which
	// would otherwise repeat on every Format call that reaches the
	// broken printer.
	warnLimit *rate.Limiter
}

// New returns a Registry with no printers registered. Format on a new
// Registry renders every error with the default printer.
func New() *Registry {
	return &Registry{
		warnLimit: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Register adds p to the front of the chain, so the most recently
// registered printer is consulted first.
func (r *Registry) Register(p Printer) {
	r.printers = append([]Printer{p}, r.printers...)
}

// Format renders err using the first registered printer that accepts
// it, trying printers from newest to oldest. A printer that declines or
// panics is skipped. If every printer is exhausted, Format falls back
// to the default printer: err.Error(), or "<nil>" for a nil error.
//
// A nil error never reaches registered printers.
func (r *Registry) Format(err error) string {
	if err == nil {
		return "<nil>"
	}
	for _, p := range r.printers {
		if s, ok := r.tryPrint(p, err); ok {
			return s
		}
	}
	return err.Error()
}

// tryPrint runs p, turning a panic into a declined print.
func (r *Registry) tryPrint(p Printer, err error) (s string, ok bool) {
	defer func() {
		if e := recover(); e != nil {
			if r.warnLimit == nil || r.warnLimit.Allow() {
				logrus.Warnf("error printer panicked for %T: %v", err, e)
			}
			s, ok = "", false
		}
	}()
	return p(err)
}
