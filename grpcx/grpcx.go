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

// Package grpcx is the gRPC boundary adapter: it turns errclass errors into
// gRPC status errors and back.
//
// The error's numeric code resolves to a gRPC status code through CodeOf;
// the class and details ride along as status details (an ErrorInfo plus a
// Struct payload), so nothing the error carries is lost on the wire.
package grpcx

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"errclass.dev/errclass"
	"errclass.dev/errclass/apis"
)

// Domain identifies this error model in ErrorInfo details.
const Domain = "errclass.dev"

// StatusOf converts a classified error into a gRPC status.
//
// The status message is the error's message; the gRPC code comes from
// CodeOf. Two detail payloads are attached when possible:
//
//   - errdetails.ErrorInfo with the class as reason, Domain as domain, and
//     the details flattened to strings in metadata;
//   - a structpb.Struct carrying the details with their types intact.
//
// If the details contain values structpb cannot represent, the Struct
// payload is skipped and the stringified metadata still preserves them.
func StatusOf(e *errclass.Error) *status.Status {
	base := status.New(CodeOf(e.Code()), e.Message())

	details := e.Details()
	info := &errdetails.ErrorInfo{
		Reason:   e.Class(),
		Domain:   Domain,
		Metadata: stringify(details),
	}

	if len(details) > 0 {
		if payload, err := structpb.NewStruct(details); err == nil {
			if with, err := base.WithDetails(info, payload); err == nil {
				return with
			}
		}
	}
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that maps
// *errclass.Error return values into gRPC status errors via StatusOf.
// Errors of any other type pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ce *errclass.Error
		if !errors.As(err, &ce) {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, StatusOf(ce).Err()
	}
}

// ExtractView pulls the error view back out of a gRPC status error produced
// by StatusOf. Useful in clients and tests.
//
// The class comes from the ErrorInfo detail, the message from the status,
// and the details from the Struct payload when present (falling back to the
// stringified ErrorInfo metadata).
func ExtractView(err error) (apis.ErrorView, bool) {
	if err == nil {
		return apis.ErrorView{}, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return apis.ErrorView{}, false
	}

	var view apis.ErrorView
	found := false
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if v.GetDomain() != Domain {
				continue
			}
			found = true
			view.Class = v.GetReason()
			if view.Details == nil && len(v.GetMetadata()) > 0 {
				view.Details = make(map[string]any, len(v.GetMetadata()))
				for k, val := range v.GetMetadata() {
					view.Details[k] = val
				}
			}
		case *structpb.Struct:
			view.Details = v.AsMap()
		}
	}
	if !found {
		return apis.ErrorView{}, false
	}
	view.Message = st.Message()
	return view, true
}

// stringify flattens a details map to the string-only form ErrorInfo
// metadata requires.
func stringify(details map[string]any) map[string]string {
	if len(details) == 0 {
		return nil
	}
	m := make(map[string]string, len(details))
	for k, v := range details {
		m[k] = fmt.Sprint(v)
	}
	return m
}
