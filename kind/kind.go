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

package kind

import (
	"errors"
	"regexp"
)

// Kind is the immutable categorization triple of an error: a name, a numeric
// 16-bit status code, and a default description.
//
// A Kind carries the *category-level* defaults; call-site-specific overrides
// live on the builder or on generated error types, never on the Kind itself.
// Kinds are plain values: copying is cheap, comparison is by value, and there
// is no mutation after construction.
type Kind struct {
	// name is the identifier of the category, e.g. "NotFound".
	// Generated kinds guarantee that the name equals the Go identifier the
	// constant is declared under.
	name string

	// code is the numeric status of the category, HTTP-flavored by
	// convention (404, 500, ...). It is also the input to the side rule.
	code uint16

	// description is the default human-readable message used when an error
	// built from this kind supplies no message of its own.
	description string
}

// Sides of the classification. A class string always starts with one of
// these two segments.
const (
	// SideClient marks errors attributed to the caller (codes 0–499).
	SideClient = "Client"

	// SideServer marks errors attributed to the service itself (codes ≥ 500).
	SideServer = "Server"
)

// MinLength and MaxLength define the allowed length range for a kind name.
//
// They are exported so that the code generator and tests can reference the
// same constraints instead of duplicating magic numbers.
const (
	// MinLength is the minimum length for a valid kind name. Requiring at
	// least 3 characters keeps ambiguous identifiers like "E" or "K1" out of
	// class strings.
	MinLength = 3

	// MaxLength is the maximum length for a valid kind name. 64 characters
	// is enough for descriptive names like "PreconditionFailed" while still
	// bounding accidental long strings.
	MaxLength = 64
)

const (
	// nameFmt is the canonical pattern for kind names.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Z] - first character must be an uppercase ASCII letter, because
	//	        generated kind names double as exported Go identifiers;
	//	[A-Za-z0-9]{2,63} - the rest may be ASCII letters or digits; the
	//	        quantifier {2,63} makes the total length 3..64 (1 + 2..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength
	// above. If you change those, adjust this pattern as well.
	nameFmt = `^[A-Z][A-Za-z0-9]{2,63}$`
)

// nameRe is the compiled pattern for kind names. Precompiled so repeated
// validation (e.g. in the code generator) does not pay the compile cost.
//
// Examples of valid names:
//   - "NotFound"
//   - "Unauthorized"
//   - "InternalServerError"
//
// Examples of invalid names:
//   - "notFound"   (lowercase first letter)
//   - "Not_Found"  (underscore)
//   - "IO"         (too short)
var nameRe = regexp.MustCompile(nameFmt)

// ErrNameInvalid is returned when a value cannot be validated as a kind name.
var ErrNameInvalid = errors.New("kind: invalid kind name")

// New constructs a Kind from its three fields.
//
// New is total: it performs no validation, because kinds declared by the
// code generator are validated at generation time and hand-declared kinds
// are trusted to follow the documented naming convention. Use Parse when
// the name comes from outside the program.
func New(name string, code uint16, description string) Kind {
	return Kind{name: name, code: code, description: description}
}

// Parse validates the name and constructs a Kind on success.
func Parse(name string, code uint16, description string) (Kind, error) {
	if err := Validate(name); err != nil {
		return Kind{}, err
	}
	return New(name, code, description), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level kinds in var blocks.
func MustParse(name string, code uint16, description string) Kind {
	k, err := Parse(name, code, description)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate checks whether the provided string is a valid kind name.
// The empty name is invalid.
func Validate(name string) error {
	if !nameRe.MatchString(name) {
		return ErrNameInvalid
	}
	return nil
}

// Default returns the fallback kind used when no specific category is
// provided: ("InternalServerError", 500, "Internal Server Error").
func Default() Kind {
	return New("InternalServerError", 500, "Internal Server Error")
}

// Name returns the identifier of the category.
func (k Kind) Name() string { return k.name }

// Code returns the numeric status of the category.
func (k Kind) Code() uint16 { return k.code }

// Description returns the default message of the category.
func (k Kind) Description() string { return k.description }

// Side classifies the kind as SideClient or SideServer based on its code.
func (k Kind) Side() string { return SideOf(k.code) }

// String returns the kind's name.
func (k Kind) String() string { return k.name }

// IsZero reports whether k is the zero value, i.e. "no kind provided".
func (k Kind) IsZero() bool { return k == Kind{} }

// SideOf is the authoritative side-classification rule: codes 0–499 map to
// SideClient, codes 500 and above map to SideServer.
func SideOf(code uint16) string {
	if code <= 499 {
		return SideClient
	}
	return SideServer
}
