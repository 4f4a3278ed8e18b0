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

package apis

// ClassedError represents an error that carries a composed classification
// string.
//
// The class answers "where in the taxonomy does this error live?". Its
// canonical form is three "::"-separated segments:
//
//	<Side>::<Kind>::<Site>
//
// e.g. "Client::NotFound::UserLookup". The side is always derived from the
// numeric code of the kind (0–499 Client, ≥500 Server); the site names the
// specific call-site-level error type.
//
// Implementations constructed through the errclass builder or through
// generated error types always follow this form; adapters should treat the
// class as an opaque identifier regardless.
type ClassedError interface {
	error

	// ErrorClass returns the classification string. It MUST be non-empty.
	ErrorClass() string
}

// CodedError represents an error that carries a numeric 16-bit status code.
//
// Codes are HTTP-flavored by convention (404, 500, ...) and are what
// boundary adapters use to decide the transport status. Adapters should
// fall back to a generic internal-error status when the code is not a
// recognized transport status.
type CodedError interface {
	error

	// ErrorCode returns the numeric status code of the error.
	ErrorCode() uint16
}

// DetailedError represents an error that exposes structured key/value
// details: field names, limits, resource identifiers, or the preserved
// text of a converted foreign error.
//
// Implementations MUST return a map that the caller may freely modify,
// i.e. a copy or nil. Returning nil simply means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns the structured details of the error. May return
	// nil.
	ErrorDetails() map[string]any
}

// ViewProvider is implemented by errors that can produce a
// transport-friendly, self-contained representation of themselves.
//
// This is useful for adapters that want to send "the canonical form" of the
// error to the client without knowing the concrete error type. The returned
// view MUST be safe to marshal and SHOULD contain only information that is
// safe to disclose.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}
