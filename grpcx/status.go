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

package grpcx

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"errclass.dev/errclass/kind"
)

// statusCodes maps well-known numeric error codes to canonical gRPC status
// codes. The values align with common REST-to-gRPC conventions; callers may
// wrap or post-process at the transport edge if a different policy is
// required.
var statusCodes = map[uint16]codes.Code{
	// 4xx: client/protocol/resource issues.
	http.StatusBadRequest:          codes.InvalidArgument,    // Malformed input, validation errors.
	http.StatusUnauthorized:        codes.Unauthenticated,    // No/invalid credentials.
	http.StatusForbidden:           codes.PermissionDenied,   // Authenticated but not allowed.
	http.StatusNotFound:            codes.NotFound,           // Target resource does not exist.
	http.StatusRequestTimeout:      codes.DeadlineExceeded,   // Client-visible time budget exceeded.
	http.StatusConflict:            codes.AlreadyExists,      // Resource creation clash / conflicting update.
	http.StatusGone:                codes.NotFound,           // gRPC has no 410; NotFound is the closest practical choice.
	http.StatusPreconditionFailed:  codes.FailedPrecondition, // If-Match / preconditions failed.
	http.StatusTooEarly:            codes.FailedPrecondition, // Request made before allowed time.
	http.StatusTooManyRequests:     codes.ResourceExhausted,  // Rate limit or quota exceeded.
	499:                            codes.Canceled,           // Non-standard (nginx) "client closed request".

	// 5xx: server / dependency / transient issues.
	http.StatusInternalServerError: codes.Internal,         // Generic internal failure.
	http.StatusNotImplemented:      codes.Unimplemented,    // Known but unimplemented operation.
	http.StatusBadGateway:          codes.Unavailable,      // Upstream dependency failed.
	http.StatusServiceUnavailable:  codes.Unavailable,      // Temporarily unreachable or overloaded.
	http.StatusGatewayTimeout:      codes.DeadlineExceeded, // Time budget exceeded server-side.
}

// CodeOf resolves a numeric error code to a gRPC status code.
//
// Resolution order:
//  1. exact entry in the well-known table above;
//  2. side-derived fallback: Client codes map to InvalidArgument, Server
//     codes to Internal.
func CodeOf(code uint16) codes.Code {
	if c, ok := statusCodes[code]; ok {
		return c
	}
	if kind.SideOf(code) == kind.SideClient {
		return codes.InvalidArgument
	}
	return codes.Internal
}
