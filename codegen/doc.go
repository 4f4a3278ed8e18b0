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

// Package codegen turns declarative error definitions into Go source.
//
// A definitions document is a small YAML file with two lists:
//
//	kinds:
//	  - name: NotFound
//	    code: 404
//	    description: Resource Not Found
//	  - name: Unauthorized
//	    code: 401
//	    description: Unauthorized Access
//
//	errors:
//	  - name: NotFoundError
//	    kind: NotFound
//	  - name: Forbidden
//	    kind: Unauthorized
//	    code: 403
//
// From the kinds list the generator emits one exported kind.Kind declaration
// per entry, whose Go identifier is the kind's own name, so the displayed
// name always matches the symbol used to reference it, by construction.
//
// From the errors list it emits one concrete error struct type per binding.
// A binding inherits the kind's code and description as its defaults, and
// may override the default code (keeping the kind's description) or both
// code and message. Each generated type carries optional per-instance
// overrides, chainable WithX setters, a Class() composed as
// "Side::Kind::TypeName", and a one-way Err() conversion into the canonical
// errclass.Error.
//
// Output is deterministic: entries are emitted in document order and the
// result is gofmt-formatted, so regenerating an unchanged document produces
// byte-identical files. The errclassgen command is the CLI front end; the
// generated files carry the standard "Code generated ... DO NOT EDIT."
// header.
package codegen
