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

package kind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Accessors(t *testing.T) {
	k := New("TestError", 500, "Test error message")

	assert.Equal(t, "TestError", k.Name())
	assert.Equal(t, uint16(500), k.Code())
	assert.Equal(t, "Test error message", k.Description())
	assert.Equal(t, SideServer, k.Side())
	assert.Equal(t, "TestError", k.String())
	assert.False(t, k.IsZero())
}

func TestKind_ComparedByValue(t *testing.T) {
	a := New("NotFound", 404, "Not Found")
	b := New("NotFound", 404, "Not Found")

	assert.Equal(t, a, b)
	assert.True(t, a == b)
}

func TestSideOf_Boundaries(t *testing.T) {
	tests := []struct {
		code uint16
		want string
	}{
		{0, SideClient},
		{404, SideClient},
		{499, SideClient},
		{500, SideServer},
		{503, SideServer},
		{65535, SideServer},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SideOf(tt.code), "code %d", tt.code)
	}
}

func TestDefault(t *testing.T) {
	d := Default()

	assert.Equal(t, "InternalServerError", d.Name())
	assert.Equal(t, uint16(500), d.Code())
	assert.Equal(t, "Internal Server Error", d.Description())
	assert.Equal(t, SideServer, d.Side())
}

func TestValidate(t *testing.T) {
	valid := []string{"NotFound", "Unauthorized", "InternalServerError", "Http2Error"}
	for _, name := range valid {
		assert.NoError(t, Validate(name), "name %q", name)
	}

	invalid := []string{"", "IO", "notFound", "Not_Found", "Not-Found", "1Error", "Err or"}
	for _, name := range invalid {
		assert.ErrorIs(t, Validate(name), ErrNameInvalid, "name %q", name)
	}
}

func TestParse(t *testing.T) {
	k, err := Parse("NotFound", 404, "Resource Not Found")
	require.NoError(t, err)
	assert.Equal(t, New("NotFound", 404, "Resource Not Found"), k)

	_, err = Parse("not_found", 404, "Resource Not Found")
	require.ErrorIs(t, err, ErrNameInvalid)
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustParse("bad name", 400, "") })
	assert.NotPanics(t, func() { MustParse("GoodName", 400, "") })
}
