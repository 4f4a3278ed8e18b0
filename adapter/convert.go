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

// Package adapter converts errclass errors into the view and descriptor
// shapes defined in apis. It performs no redaction or filtering: whatever
// the error instance contains is exposed as-is, and higher-level handlers
// apply policy where needed.
package adapter

import (
	"errclass.dev/errclass"
	"errclass.dev/errclass/apis"
)

// ToView converts a classified error into the public ErrorView, the
// boundary record shape with the numeric code excluded.
func ToView(e *errclass.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Class:   e.Class(),
		Message: e.Message(),
	}
	if ds := e.Details(); len(ds) > 0 {
		v.Details = ds
	}
	return v
}

// ToDescriptor converts a classified error together with its resolved
// transport statuses into a portable ErrorDescriptor for logging, tracing,
// or message-bus propagation.
func ToDescriptor(e *errclass.Error, httpStatus int, grpcCode int) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Class:      e.Class(),
		Code:       e.Code(),
		HTTPStatus: httpStatus,
		GRPCCode:   grpcCode,
		Message:    e.Message(),
	}
}
