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

// ErrorView is the minimal, serializable representation of an error: the
// boundary record shape shared by HTTP bodies, gRPC details and logs:
//
//	{"class": ..., "message": ..., "details": {...}}
//
// The numeric code is intentionally absent: it is conveyed positionally by
// the surrounding transport (HTTP response status, gRPC status code), not
// duplicated inside the payload.
type ErrorView struct {
	// Class is the composed classification string, canonically
	// "Side::Kind::Site".
	Class string `json:"class"`

	// Message is the human-friendly description of the failure.
	Message string `json:"message"`

	// Details carries optional structured error data. Keys are unique;
	// serialized output orders them lexicographically.
	Details map[string]any `json:"details,omitempty"`
}
