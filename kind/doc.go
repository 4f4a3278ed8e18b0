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

// Package kind defines the immutable classification primitive of errclass.
//
// A "kind" is a reusable error category: a name (e.g. "NotFound"), a numeric
// 16-bit status code (e.g. 404), and a default human-readable description.
// Kinds are meant to be:
//
//   - declared once, package-level, and shared across many call sites;
//   - compared by value: a kind has no identity beyond its three fields;
//   - never mutated after declaration.
//
// The package also hosts the single authoritative side-classification rule:
// codes 0–499 are "Client" errors, codes 500 and above are "Server" errors.
// Every class string composed anywhere in errclass derives its side through
// this rule.
package kind
