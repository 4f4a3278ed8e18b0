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
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// checkGolden compares generated output against a golden file.
// Update goldens with: go test ./codegen -update
func checkGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	goldenPath := filepath.Join("testdata", name)
	if *update {
		require.NoError(t, os.WriteFile(goldenPath, got, 0o644))
		t.Logf("updated %s", goldenPath)
		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "read golden (run with -update to create)")

	// Normalize trailing newlines to avoid EOF newline mismatches.
	normalize := func(b []byte) string { return strings.TrimRight(string(b), "\r\n") }
	require.Equal(t, normalize(want), normalize(got), "generated output mismatch for %s", name)
}

func loadTestDefs(t *testing.T) *Definitions {
	t.Helper()
	defs, err := Load(filepath.Join("testdata", "defs.yaml"))
	require.NoError(t, err)
	return defs
}

func TestGenerator_Kinds_Golden(t *testing.T) {
	g := NewGenerator(loadTestDefs(t), "sample", "")

	got, err := g.Kinds()
	require.NoError(t, err)
	checkGolden(t, "kinds_gen.golden", got)
}

func TestGenerator_Errors_Golden(t *testing.T) {
	g := NewGenerator(loadTestDefs(t), "sample", "")

	got, err := g.Errors()
	require.NoError(t, err)
	checkGolden(t, "errors_gen.golden", got)
}

func TestGenerator_Deterministic(t *testing.T) {
	g := NewGenerator(loadTestDefs(t), "sample", "")

	first, err := g.Kinds()
	require.NoError(t, err)
	second, err := g.Kinds()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	firstErrs, err := g.Errors()
	require.NoError(t, err)
	secondErrs, err := g.Errors()
	require.NoError(t, err)
	assert.Equal(t, firstErrs, secondErrs)
}

func TestGenerator_GeneratedHeader(t *testing.T) {
	g := NewGenerator(loadTestDefs(t), "sample", "")

	for _, gen := range []func() ([]byte, error){g.Kinds, g.Errors} {
		out, err := gen()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(out),
			"// Code generated by errclassgen. DO NOT EDIT."))
	}
}

func TestGenerator_ModuleOverride(t *testing.T) {
	g := NewGenerator(loadTestDefs(t), "sample", "example.com/custom")

	kindsOut, err := g.Kinds()
	require.NoError(t, err)
	assert.Contains(t, string(kindsOut), `import "example.com/custom/kind"`)

	errorsOut, err := g.Errors()
	require.NoError(t, err)
	assert.Contains(t, string(errorsOut), `"example.com/custom"`)
	assert.Contains(t, string(errorsOut), `"example.com/custom/kind"`)
}

func TestGenerator_BindingForms(t *testing.T) {
	g := NewGenerator(loadTestDefs(t), "sample", "")

	out, err := g.Errors()
	require.NoError(t, err)
	src := string(out)

	// Inherit form: defaults delegate to the kind.
	assert.Contains(t, src, "return NotFound.Code()")
	assert.Contains(t, src, "return NotFound.Description()")

	// Code-override form: literal code, inherited description.
	assert.Contains(t, src, "return 403")
	assert.Contains(t, src, "return Unauthorized.Description()")

	// Full-override form: both literals.
	assert.Contains(t, src, "return 418")
	assert.Contains(t, src, `return "I'm a teapot"`)
}
