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

// Package httpx is the response-boundary adapter: it turns errclass errors
// into HTTP responses.
//
// The error's numeric code becomes the response status when it is a
// recognized HTTP status; anything else falls back to 500. The body is the
// boundary record shape {"class", "message", "details"}; the code is
// conveyed by the status line, never duplicated into the body.
package httpx

import (
	"encoding/json"
	"net/http"

	"errclass.dev/errclass"
	"errclass.dev/errclass/kind"
)

// StatusOf maps an error's numeric code to an HTTP response status.
// Codes that are not recognized HTTP statuses map to 500.
func StatusOf(code uint16) int {
	s := int(code)
	if http.StatusText(s) == "" {
		return http.StatusInternalServerError
	}
	return s
}

// WriteError serializes the error as the JSON boundary record and writes it
// with the status resolved by StatusOf. A nil error writes nothing.
//
// No redaction or filtering is performed here: whatever the error carries
// is exposed as-is. Handlers apply policy before reaching this boundary.
func WriteError(rw http.ResponseWriter, err *errclass.Error) {
	if err == nil {
		return
	}

	body, merr := json.Marshal(err)
	if merr != nil {
		// A detail value the encoder cannot represent. Degrade to the bare
		// record without details rather than failing to respond.
		fallback := errclass.New(err.Code(), err.Class(), err.Message(), nil)
		body, _ = json.Marshal(fallback)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(StatusOf(err.Code()))
	_, _ = rw.Write(body)
}

// Respond dispatches a handler outcome: a non-nil err goes through
// WriteError, otherwise value is serialized as the 200 JSON response.
//
// This is the result-type boundary of the model: success values keep their
// own serialization, failures all funnel into the canonical error record.
func Respond(rw http.ResponseWriter, value any, err *errclass.Error) {
	if err != nil {
		WriteError(rw, err)
		return
	}

	body, merr := json.Marshal(value)
	if merr != nil {
		WriteError(rw, errclass.NewBuilder(kind.Default(), "ResponseEncoding").
			WithMessage("response serialization failed").
			WithDetail(errclass.OriginKey, merr.Error()).
			Build())
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write(body)
}
