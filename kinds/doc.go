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

// Package kinds is the standard catalogue of error kinds and error types.
//
// It covers the common HTTP-flavored categories (NotFound, Unauthorized,
// Conflict, ...) so applications with ordinary needs can use errclass
// without minting their own taxonomy:
//
//	return kinds.NewNotFoundError().
//	    WithMessage("user does not exist").
//	    Err()
//
// The catalogue is generated by errclassgen from kinds.yaml; edit the
// document and regenerate rather than editing the _gen.go files.
package kinds

//go:generate go run errclass.dev/errclass/cmd/errclassgen all -i kinds.yaml -d . -p kinds
