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

// ErrorDescriptor is a flat, transport-friendly description of a classified
// error together with its resolved transport statuses.
//
// Unlike ErrorView (the client-facing body), the descriptor is meant for
// structured logging, tracing, or message-bus propagation, where carrying
// the numeric code and the concrete transport projections is useful rather
// than redundant.
type ErrorDescriptor struct {
	// Class is the composed classification string.
	Class string `json:"class"`

	// Code is the error's own numeric 16-bit status.
	Code uint16 `json:"code"`

	// HTTPStatus is the HTTP status the error resolves to at the response
	// boundary. A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) the error resolves to
	// at the gRPC boundary. A value of 0 means "not resolved" (0 is
	// codes.OK, which a descriptor for an error never legitimately carries).
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the human-friendly description of the failure.
	Message string `json:"message,omitempty"`
}
