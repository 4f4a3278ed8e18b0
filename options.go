/*
   Copyright 2026 The ERRCLASS Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package errclass

import "errclass.dev/errclass/kind"

// Option is a functional option for constructing an Error in one call.
// It always takes a Builder and returns the (possibly adjusted) Builder.
type Option func(Builder) Builder

// NewError is a one-call constructor for Error.
//
// Usage:
//
//	return errclass.NewError(kinds.Unavailable, "StorageProbe",
//	    errclass.WithMessageOption("storage is down"),
//	    errclass.WithDetailOption("host", "db:5432"),
//	)
//
// It seeds a Builder with the kind and site, applies all options in order,
// and builds.
func NewError(k kind.Kind, site string, opts ...Option) *Error {
	b := NewBuilder(k, site)
	for _, opt := range opts {
		b = opt(b)
	}
	return b.Build()
}

// WithCodeOption overrides the code on construction.
// Intended to be used with NewError(...).
func WithCodeOption(code uint16) Option {
	return func(b Builder) Builder {
		return b.WithCode(code)
	}
}

// WithMessageOption overrides the message on construction.
// Intended to be used with NewError(...).
func WithMessageOption(message string) Option {
	return func(b Builder) Builder {
		return b.WithMessage(message)
	}
}

// WithDetailsOption replaces the details on construction.
// Intended to be used with NewError(...).
func WithDetailsOption(details map[string]any) Option {
	return func(b Builder) Builder {
		return b.WithDetails(details)
	}
}

// WithDetailOption adds a single detail key/value on construction.
// Intended to be used with NewError(...).
func WithDetailOption(key string, value any) Option {
	return func(b Builder) Builder {
		return b.WithDetail(key, value)
	}
}
