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

// Package errclass models classified, serializable application errors.
//
// Every error in this model is an immutable record of four things:
//
//   - Code: a numeric 16-bit status (HTTP-flavored by convention);
//   - Class: a three-segment "Side::Kind::Site" identifier;
//   - Message: a human-readable description;
//   - Details: an open map of contextual key/value data.
//
// Errors are produced three ways: through the fluent Builder seeded with a
// shared kind.Kind, through error types emitted by the errclassgen code
// generator, or by absorbing a foreign error through a Converter. All
// three paths terminate in the same Error value.
package errclass

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
)

// Error is the canonical structured error record.
//
// It carries:
//   - Code: numeric 16-bit status (conveyed positionally at boundaries,
//     e.g. as an HTTP response status, never duplicated into the body);
//   - Class: the composed classification string, canonically
//     "Side::Kind::Site";
//   - Message: human-oriented description (what went wrong);
//   - Details: arbitrary key/value payload for clients and logs.
//
// Error is immutable once built. All fields are unexported and reachable
// only through accessors; Details returns a copy, so no caller can mutate
// the stored map. Values can therefore be shared across goroutines without
// coordination.
type Error struct {
	code    uint16
	class   string
	message string
	details map[string]any
}

// errorJSON is the boundary serialization shape of an Error. The numeric
// code is intentionally absent: transports convey it positionally (response
// status, gRPC code), and emitting it here would duplicate it.
type errorJSON struct {
	Class   string         `json:"class"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// New constructs an Error from its four fields.
//
// The class is accepted as-is: the three-segment "Side::Kind::Site" form is
// a documented convention, not an enforced invariant. Callers that want the
// convention guaranteed should construct through Builder or a generated
// error type. The details map is copied, so the caller's map stays theirs.
func New(code uint16, class, message string, details map[string]any) *Error {
	return &Error{
		code:    code,
		class:   class,
		message: message,
		details: maps.Clone(details),
	}
}

// Code returns the numeric status of the error.
func (e *Error) Code() uint16 { return e.code }

// Class returns the classification string of the error.
func (e *Error) Class() string { return e.class }

// Message returns the human-readable message of the error.
func (e *Error) Message() string { return e.message }

// Details returns a copy of the details map. The copy is never nil, and
// mutating it has no effect on the error.
func (e *Error) Details() map[string]any {
	if e.details == nil {
		return map[string]any{}
	}
	return maps.Clone(e.details)
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<class> (<code>) - <message>
//
// This makes the error both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s (%d) - %s", e.class, e.code, e.message)
}

// ErrorClass implements apis.ClassedError.
func (e *Error) ErrorClass() string { return e.class }

// ErrorCode implements apis.CodedError.
func (e *Error) ErrorCode() uint16 { return e.code }

// ErrorDetails implements apis.DetailedError. Like Details, it returns a
// copy.
func (e *Error) ErrorDetails() map[string]any { return e.Details() }

// IOError converts the error into a generic "invalid data" error for
// integration with code that expects plain categorized errors. The result
// wraps fs.ErrInvalid, so errors.Is(e.IOError(), fs.ErrInvalid) holds, and
// its text is the rendered form of e.
func (e *Error) IOError() error {
	return fmt.Errorf("%w: %s", fs.ErrInvalid, e)
}

// MarshalJSON serializes the boundary record shape:
//
//	{"class": ..., "message": ..., "details": {...}}
//
// Map keys are emitted in sorted order. The numeric code is excluded; see
// errorJSON.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{
		Class:   e.class,
		Message: e.message,
		Details: e.Details(),
	})
}

// UnmarshalJSON restores class, message and details from the boundary
// record shape. The numeric code is not part of the payload and is left
// zero; callers that need it must thread it through separately (e.g. from
// the transport status).
func (e *Error) UnmarshalJSON(data []byte) error {
	var raw errorJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.code = 0
	e.class = raw.Class
	e.message = raw.Message
	e.details = raw.Details
	return nil
}
