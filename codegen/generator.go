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
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"
)

// DefaultModule is the import path of this module; generated files import
// "<module>" (the errclass root) and "<module>/kind".
const DefaultModule = "errclass.dev/errclass"

// Generator emits Go source from a validated definitions document.
//
// Output is deterministic: declarations are emitted in document order and
// the final bytes are gofmt-formatted.
type Generator struct {
	defs   *Definitions
	pkg    string
	module string
}

// NewGenerator returns a Generator writing declarations for package pkg.
// module is the import path of the errclass module; the empty string means
// DefaultModule.
func NewGenerator(defs *Definitions, pkg, module string) *Generator {
	if module == "" {
		module = DefaultModule
	}
	return &Generator{defs: defs, pkg: pkg, module: module}
}

// Kinds emits the kind declarations file: one exported kind.Kind per
// kinds entry, declared under the entry's own name.
func (g *Generator) Kinds() ([]byte, error) {
	return g.render(kindsTmpl, kindsView{
		Package: g.pkg,
		Module:  g.module,
		Kinds:   g.defs.Kinds,
	})
}

// Errors emits the error-type declarations file: one struct type per
// errors entry, with override accessors, chainable setters, and the Err()
// conversion into the canonical Error.
func (g *Generator) Errors() ([]byte, error) {
	view := errorsView{
		Package: g.pkg,
		Module:  g.module,
	}
	for _, e := range g.defs.Errors {
		t := typeView{
			Name:        e.Name,
			Kind:        e.Kind,
			CodeExpr:    e.Kind + ".Code()",
			MessageExpr: e.Kind + ".Description()",
		}
		// Binding-level overrides become literals; unset fields keep the
		// kind's own defaults as the fallback expression.
		if e.Code != nil {
			t.CodeExpr = strconv.Itoa(int(*e.Code))
		}
		if e.Message != nil {
			t.MessageExpr = strconv.Quote(*e.Message)
		}
		view.Types = append(view.Types, t)
	}
	return g.render(errorsTmpl, view)
}

func (g *Generator) render(tmpl *template.Template, view any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format generated source: %w", err)
	}
	return src, nil
}

type kindsView struct {
	Package string
	Module  string
	Kinds   []KindDef
}

type errorsView struct {
	Package string
	Module  string
	Types   []typeView
}

// typeView is one error-type binding with its default expressions already
// resolved to Go syntax (a literal for a binding override, an accessor call
// on the kind otherwise).
type typeView struct {
	Name        string
	Kind        string
	CodeExpr    string
	MessageExpr string
}

var kindsTmpl = template.Must(template.New("kinds").Parse(`// Code generated by errclassgen. DO NOT EDIT.

package {{.Package}}

import "{{.Module}}/kind"

// Kinds minted from the definitions document. Each identifier equals the
// kind's displayed name by construction.
var (
{{- range .Kinds}}
	// {{.Name}} ({{.Code}}): {{.Description}}.
	{{.Name}} = kind.New("{{.Name}}", {{.Code}}, {{printf "%q" .Description}})
{{- end}}
)
`))

var errorsTmpl = template.Must(template.New("errors").Parse(`// Code generated by errclassgen. DO NOT EDIT.

package {{.Package}}

import (
	"fmt"
	"maps"

	"{{.Module}}"
	"{{.Module}}/kind"
)
{{range .Types}}
// {{.Name}} is a {{.Kind}}-kind error type. Overrides are unset until the
// WithX setters provide them; accessors fall back to the binding defaults.
type {{.Name}} struct {
	code    *uint16
	message *string
	details map[string]any
}

// New{{.Name}} returns a {{.Name}} with no overrides set.
func New{{.Name}}() {{.Name}} {
	return {{.Name}}{}
}

// Kind returns the kind {{.Name}} is bound to.
func (e {{.Name}}) Kind() kind.Kind {
	return {{.Kind}}
}

// Code returns the code override, or the binding default.
func (e {{.Name}}) Code() uint16 {
	if e.code != nil {
		return *e.code
	}
	return {{.CodeExpr}}
}

// Message returns the message override, or the binding default.
func (e {{.Name}}) Message() string {
	if e.message != nil {
		return *e.message
	}
	return {{.MessageExpr}}
}

// Details returns a copy of the details, or an empty map if never set.
func (e {{.Name}}) Details() map[string]any {
	if e.details == nil {
		return map[string]any{}
	}
	return maps.Clone(e.details)
}

// WithCode overrides the code. The last call wins.
func (e {{.Name}}) WithCode(code uint16) {{.Name}} {
	e.code = &code
	return e
}

// WithMessage overrides the message. The last call wins.
func (e {{.Name}}) WithMessage(message string) {{.Name}} {
	e.message = &message
	return e
}

// WithDetails replaces any previously set details with a copy of the given
// map.
func (e {{.Name}}) WithDetails(details map[string]any) {{.Name}} {
	e.details = maps.Clone(details)
	return e
}

// Class composes the canonical Side::Kind::Site classification.
func (e {{.Name}}) Class() string {
	return fmt.Sprintf("%s::%s::{{.Name}}", {{.Kind}}.Side(), {{.Kind}}.Name())
}

// Err converts into the canonical errclass.Error, carrying over the
// resolved code, message and details.
func (e {{.Name}}) Err() *errclass.Error {
	return errclass.NewBuilder({{.Kind}}, "{{.Name}}").
		WithCode(e.Code()).
		WithMessage(e.Message()).
		WithDetails(e.Details()).
		Build()
}

// Error implements the error interface.
func (e {{.Name}}) Error() string {
	return fmt.Sprintf("%s (%d) - %s", e.Class(), e.Code(), e.Message())
}
{{end -}}
`))
