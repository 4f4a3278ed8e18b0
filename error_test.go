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

import (
	"encoding/json"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Accessors(t *testing.T) {
	details := map[string]any{"field": "username"}
	e := New(400, "Client::ValidationError::InvalidField", "Invalid username", details)

	assert.Equal(t, uint16(400), e.Code())
	assert.Equal(t, "Client::ValidationError::InvalidField", e.Class())
	assert.Equal(t, "Invalid username", e.Message())
	assert.Equal(t, details, e.Details())
}

func TestError_DetailsAreCopied(t *testing.T) {
	details := map[string]any{"a": 1}
	e := New(400, "Client::ValidationError::InvalidField", "bad", details)

	// Mutating the caller's map after construction changes nothing.
	details["a"] = 2
	assert.Equal(t, 1, e.Details()["a"])

	// Mutating a returned copy changes nothing either.
	got := e.Details()
	got["a"] = 3
	assert.Equal(t, 1, e.Details()["a"])
}

func TestError_NilDetails(t *testing.T) {
	e := New(500, "Server::InternalServerError::UnknownError", "boom", nil)

	got := e.Details()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestError_Rendering(t *testing.T) {
	e := New(404, "Client::NotFound::UserLookup", "user does not exist", nil)

	assert.Equal(t, "Client::NotFound::UserLookup (404) - user does not exist", e.Error())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestError_PermissiveClass(t *testing.T) {
	// New accepts any class string; the Side::Kind::Site form is a
	// convention, not an enforced invariant.
	e := New(400, "Custom::BadRequest", "Invalid input", nil)
	assert.Equal(t, "Custom::BadRequest", e.Class())
}

func TestError_IOError(t *testing.T) {
	e := New(404, "Client::NotFound::MyNotFoundError", "foo", nil)

	ioErr := e.IOError()
	require.Error(t, ioErr)
	assert.ErrorIs(t, ioErr, fs.ErrInvalid)
	assert.Contains(t, ioErr.Error(), "Client::NotFound::MyNotFoundError (404) - foo")
}

func TestError_MarshalJSON_ExcludesCode(t *testing.T) {
	e := New(404, "Client::NotFound::UserLookup", "user does not exist",
		map[string]any{"user_id": "42"})

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "Client::NotFound::UserLookup", raw["class"])
	assert.Equal(t, "user does not exist", raw["message"])
	assert.Equal(t, map[string]any{"user_id": "42"}, raw["details"])
	assert.NotContains(t, raw, "code")
}

func TestError_JSONRoundTrip(t *testing.T) {
	e := New(404, "Client::NotFound::UserLookup", "user does not exist",
		map[string]any{"user_id": "42"})

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var back Error
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, e.Class(), back.Class())
	assert.Equal(t, e.Message(), back.Message())
	assert.Equal(t, e.Details(), back.Details())
	// The code is excluded from the body and is not part of the round trip.
	assert.Equal(t, uint16(0), back.Code())
}

func TestError_ImplementsErrorContracts(t *testing.T) {
	e := New(404, "Client::NotFound::UserLookup", "gone", map[string]any{"k": "v"})

	var err error = e
	assert.Equal(t, e.Error(), err.Error())
	assert.Equal(t, "Client::NotFound::UserLookup", e.ErrorClass())
	assert.Equal(t, uint16(404), e.ErrorCode())
	assert.Equal(t, map[string]any{"k": "v"}, e.ErrorDetails())

	var target *Error
	assert.True(t, errors.As(err, &target))
}
