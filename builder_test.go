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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errclass.dev/errclass/kind"
)

var testKind = kind.New("TestError", 500, "Test error message")

func TestBuilder_NoOverrides(t *testing.T) {
	e := NewBuilder(testKind, "MyError").Build()

	assert.Equal(t, uint16(500), e.Code())
	assert.Equal(t, "Test error message", e.Message())
	assert.Equal(t, "Server::TestError::MyError", e.Class())
	assert.Empty(t, e.Details())
}

func TestBuilder_RendersExactly(t *testing.T) {
	e := NewBuilder(testKind, "MyError").
		WithMessage("Test error").
		Build()

	assert.Equal(t, "Server::TestError::MyError (500) - Test error", e.Error())
}

func TestBuilder_OverridesTakePrecedence(t *testing.T) {
	details := map[string]any{"reason": "token_expired"}

	e := NewBuilder(kind.New("Unauthorized", 401, "Unauthorized Access"), "TokenCheck").
		WithCode(498).
		WithMessage("Token expired").
		WithDetails(details).
		Build()

	assert.Equal(t, uint16(498), e.Code())
	assert.Equal(t, "Token expired", e.Message())
	assert.Equal(t, details, e.Details())
	// The side stays derived from the kind's own code, not the override.
	assert.Equal(t, "Client::Unauthorized::TokenCheck", e.Class())
}

func TestBuilder_CallOrderIrrelevant(t *testing.T) {
	a := NewBuilder(testKind, "MyError").WithCode(404).WithMessage("m").Build()
	b := NewBuilder(testKind, "MyError").WithMessage("m").WithCode(404).Build()

	assert.Equal(t, a.Error(), b.Error())
}

func TestBuilder_LastOverrideWins(t *testing.T) {
	e := NewBuilder(testKind, "MyError").
		WithCode(501).
		WithCode(503).
		WithMessage("first").
		WithMessage("second").
		Build()

	assert.Equal(t, uint16(503), e.Code())
	assert.Equal(t, "second", e.Message())
}

func TestBuilder_WithDetailsReplaces(t *testing.T) {
	e := NewBuilder(testKind, "MyError").
		WithDetails(map[string]any{"a": 1, "b": 2}).
		WithDetails(map[string]any{"c": 3}).
		Build()

	// A fresh WithDetails call fully replaces prior details; no union.
	assert.Equal(t, map[string]any{"c": 3}, e.Details())
}

func TestBuilder_WithDetailAccretes(t *testing.T) {
	e := NewBuilder(testKind, "MyError").
		WithDetail("a", 1).
		WithDetail("b", 2).
		Build()

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, e.Details())
}

func TestBuilder_ConsumptionDoesNotShareState(t *testing.T) {
	base := NewBuilder(testKind, "MyError").WithDetail("a", 1)

	e1 := base.WithDetail("b", 2).Build()
	e2 := base.WithDetail("c", 3).Build()

	assert.Equal(t, map[string]any{"a": 1, "b": 2}, e1.Details())
	assert.Equal(t, map[string]any{"a": 1, "c": 3}, e2.Details())
}

func TestBuilder_ZeroValueDefaults(t *testing.T) {
	var b Builder
	e := b.Build()

	require.NotNil(t, e)
	assert.Equal(t,
		"Server::InternalServerError::UnknownError (500) - Internal Server Error",
		e.Error())
}

func TestNewError_Options(t *testing.T) {
	e := NewError(testKind, "MyError",
		WithCodeOption(503),
		WithMessageOption("overridden"),
		WithDetailsOption(map[string]any{"a": 1}),
		WithDetailOption("b", 2),
	)

	assert.Equal(t, uint16(503), e.Code())
	assert.Equal(t, "overridden", e.Message())
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, e.Details())
	assert.Equal(t, "Server::TestError::MyError", e.Class())
}
