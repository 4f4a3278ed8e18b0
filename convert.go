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

import "maps"

// OriginKey is the reserved details key under which a converted foreign
// error's rendered text is preserved when a custom message displaces it.
const OriginKey = "origin"

// Converter absorbs foreign errors into the canonical Error without losing
// diagnostic information.
//
// Implementations provide only Convert: given the already-resolved message
// and details (see StoreOrigin), produce the final Error, typically by
// delegating into a generated error type or a Builder chain:
//
//	type pgConverter struct{}
//
//	func (pgConverter) Convert(err error, message string, details map[string]any) *errclass.Error {
//	    return kinds.NewUnavailableError().
//	        WithMessage(message).
//	        WithDetails(details).
//	        Err()
//	}
//
// External callers never invoke Convert directly; they go through
// ConvertError, which guarantees the origin-preservation invariant.
type Converter interface {
	// Convert produces the final Error from the resolved message and
	// details. It must be total: conversion never fails.
	Convert(err error, message string, details map[string]any) *Error
}

// StoreOrigin resolves the (message, details) pair for a foreign error.
//
// With a non-empty override, it returns the override as the message and a
// copy of details with the foreign error's rendered text inserted under
// OriginKey; pre-existing entries are kept (an existing "origin" entry is
// replaced). With an empty override, it returns the foreign error's own
// text as the message and the details untouched: when the message already
// is the origin, storing the same text twice would be noise.
func StoreOrigin(err error, override string, details map[string]any) (string, map[string]any) {
	if override == "" {
		return err.Error(), details
	}
	d := make(map[string]any, len(details)+1)
	maps.Copy(d, details)
	d[OriginKey] = err.Error()
	return override, d
}

// ConvertError is the single entry point for absorbing a foreign error: it
// resolves message and details through StoreOrigin, then hands both to the
// converter's Convert hook.
//
// An empty override means "use the foreign error's own text as the
// message". Either way, the foreign error's text is never dropped: it ends
// up as the message itself or under OriginKey in the details.
func ConvertError(c Converter, err error, override string, details map[string]any) *Error {
	message, d := StoreOrigin(err, override, details)
	return c.Convert(err, message, d)
}
