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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errclass.dev/errclass"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		code uint16
		want int
	}{
		{404, 404},
		{500, 500},
		{503, 503},
		{0, http.StatusInternalServerError},    // not an HTTP status
		{999, http.StatusInternalServerError},  // out of range
		{6000, http.StatusInternalServerError}, // way out of range
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.code), "code %d", tt.code)
	}
}

func TestWriteError(t *testing.T) {
	e := errclass.New(404, "Client::NotFound::UserLookup", "user does not exist",
		map[string]any{"user_id": "42"})

	rec := httptest.NewRecorder()
	WriteError(rec, e)

	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Client::NotFound::UserLookup", body["class"])
	assert.Equal(t, "user does not exist", body["message"])
	assert.Equal(t, map[string]any{"user_id": "42"}, body["details"])
	assert.NotContains(t, body, "code")
}

func TestWriteError_UnmappedCodeFallsBackTo500(t *testing.T) {
	e := errclass.New(999, "Server::Custom::Weird", "odd", nil)

	rec := httptest.NewRecorder()
	WriteError(rec, e)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteError_Nil(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, nil)

	assert.Empty(t, rec.Body.Bytes())
}

func TestWriteError_UnencodableDetails(t *testing.T) {
	e := errclass.New(500, "Server::InternalServerError::Boom", "boom",
		map[string]any{"ch": make(chan int)})

	rec := httptest.NewRecorder()
	WriteError(rec, e)

	assert.Equal(t, 500, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Server::InternalServerError::Boom", body["class"])
}

func TestRespond_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, map[string]string{"hello": "world"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"hello":"world"}`, rec.Body.String())
}

func TestRespond_Failure(t *testing.T) {
	e := errclass.New(403, "Client::Unauthorized::ForbiddenError", "nope", nil)

	rec := httptest.NewRecorder()
	Respond(rec, nil, e)

	assert.Equal(t, 403, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Client::Unauthorized::ForbiddenError", body["class"])
}

func TestRespond_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()
	Respond(rec, make(chan int), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Server::InternalServerError::ResponseEncoding", body["class"])
}
