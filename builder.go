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

import (
	"fmt"
	"maps"

	"errclass.dev/errclass/kind"
)

// Builder composes a kind.Kind, a site name, and optional overrides into an
// Error.
//
// Builders are transient values consumed in a fluent chain:
//
//	err := errclass.NewBuilder(kinds.NotFound, "UserLookup").
//		WithMessage("user does not exist").
//		WithDetail("user_id", id).
//		Build()
//
// Each WithX method takes the builder by value and returns the modified
// copy, so a Builder is never shared in a half-mutated state. Build never
// fails.
//
// The zero Builder is usable: it builds the generic
// "Server::InternalServerError::UnknownError (500) - Internal Server Error".
type Builder struct {
	// kind is the category the error belongs to. The zero value falls back
	// to kind.Default() at Build time.
	kind kind.Kind

	// site is the call-site discriminator, the third segment of the class.
	// Empty falls back to "UnknownError" at Build time.
	site string

	// code, message and details are optional overrides. nil means "unset,
	// use the kind's default" (or an empty map, for details).
	code    *uint16
	message *string
	details map[string]any
}

// NewBuilder returns a Builder for the given kind and site name with all
// overrides unset.
func NewBuilder(k kind.Kind, site string) Builder {
	return Builder{kind: k, site: site}
}

// WithCode overrides the numeric code of the resulting error. Calling it
// again replaces the previous override.
//
// The code override never changes the side segment of the class: the side
// is a property of the kind, derived from the kind's own code.
func (b Builder) WithCode(code uint16) Builder {
	b.code = &code
	return b
}

// WithMessage overrides the message of the resulting error. Calling it
// again replaces the previous override.
func (b Builder) WithMessage(message string) Builder {
	b.message = &message
	return b
}

// WithDetails overrides the details of the resulting error with a copy of
// the given map. Each call fully replaces any previously set details; maps
// from successive calls are never merged.
func (b Builder) WithDetails(details map[string]any) Builder {
	b.details = maps.Clone(details)
	if b.details == nil {
		b.details = map[string]any{}
	}
	return b
}

// WithDetail sets a single key in the pending details, keeping previously
// set entries. Unlike WithDetails it is additive; use it to accrete context
// one entry at a time.
func (b Builder) WithDetail(key string, value any) Builder {
	d := make(map[string]any, len(b.details)+1)
	maps.Copy(d, b.details)
	d[key] = value
	b.details = d
	return b
}

// Build resolves the overrides against the kind's defaults and produces the
// Error:
//
//   - code: the override, or else the kind's code;
//   - message: the override, or else the kind's description;
//   - class: "{kind.Side()}::{kind.Name()}::{site}";
//   - details: the override, or else an empty map.
//
// Build always succeeds.
func (b Builder) Build() *Error {
	k := b.kind
	if k.IsZero() {
		k = kind.Default()
	}
	site := b.site
	if site == "" {
		site = "UnknownError"
	}

	code := k.Code()
	if b.code != nil {
		code = *b.code
	}
	message := k.Description()
	if b.message != nil {
		message = *b.message
	}

	return New(
		code,
		fmt.Sprintf("%s::%s::%s", k.Side(), k.Name(), site),
		message,
		b.details,
	)
}
