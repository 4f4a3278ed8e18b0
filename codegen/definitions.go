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

package codegen

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"errclass.dev/errclass/kind"
)

// Definitions is the parsed form of a definitions document.
type Definitions struct {
	// Kinds declares the kind constants to mint, in emission order.
	Kinds []KindDef `yaml:"kinds"`

	// Errors declares the error types to mint, in emission order.
	Errors []ErrorDef `yaml:"errors"`
}

// KindDef declares one kind constant: (identifier, code, description).
// The identifier doubles as the kind's displayed name.
type KindDef struct {
	Name        string `yaml:"name"`
	Code        uint16 `yaml:"code"`
	Description string `yaml:"description"`
}

// ErrorDef binds one generated error type to a declared kind.
//
// The three binding forms of the model map onto the optional fields:
//
//   - only Kind set: inherit the kind's code and description as defaults;
//   - Kind+Code: override the default code, keep the kind's description;
//   - Kind+Code+Message: override both defaults.
type ErrorDef struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"`
	Code    *uint16 `yaml:"code"`
	Message *string `yaml:"message"`
}

// Sentinel validation errors. Validate wraps them with the offending entry.
var (
	// ErrDuplicateName is returned when two declarations (kinds or error
	// types) would mint the same Go identifier.
	ErrDuplicateName = errors.New("codegen: duplicate declaration name")

	// ErrUnknownKind is returned when an error binding references a kind
	// that the same document does not declare.
	ErrUnknownKind = errors.New("codegen: error type references undeclared kind")

	// ErrEmptyDocument is returned when a document declares nothing.
	ErrEmptyDocument = errors.New("codegen: definitions document is empty")
)

// Load reads and parses a definitions document from disk.
func Load(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codegen: read definitions: %w", err)
	}
	return Parse(data)
}

// Parse decodes a definitions document and validates it.
func Parse(data []byte) (*Definitions, error) {
	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("codegen: parse definitions: %w", err)
	}
	if err := defs.Validate(); err != nil {
		return nil, err
	}
	return &defs, nil
}

// Validate checks the document for problems the generator cannot emit
// around: invalid identifiers, duplicate names, and dangling kind
// references. Kind and error-type names share one namespace because both
// become package-level Go identifiers.
func (d *Definitions) Validate() error {
	if len(d.Kinds) == 0 && len(d.Errors) == 0 {
		return ErrEmptyDocument
	}

	declared := make(map[string]bool, len(d.Kinds)+len(d.Errors))

	for _, k := range d.Kinds {
		if err := kind.Validate(k.Name); err != nil {
			return fmt.Errorf("kind %q: %w", k.Name, err)
		}
		if declared[k.Name] {
			return fmt.Errorf("kind %q: %w", k.Name, ErrDuplicateName)
		}
		declared[k.Name] = true
	}

	kinds := make(map[string]bool, len(d.Kinds))
	for _, k := range d.Kinds {
		kinds[k.Name] = true
	}

	for _, e := range d.Errors {
		if err := kind.Validate(e.Name); err != nil {
			return fmt.Errorf("error type %q: %w", e.Name, err)
		}
		if declared[e.Name] {
			return fmt.Errorf("error type %q: %w", e.Name, ErrDuplicateName)
		}
		declared[e.Name] = true

		if !kinds[e.Kind] {
			return fmt.Errorf("error type %q (kind %q): %w", e.Name, e.Kind, ErrUnknownKind)
		}
	}

	return nil
}
