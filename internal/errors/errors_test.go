package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := Unsupported("kind 7")
	assert.Equal(t, "[UNSUPPORTED_ARGUMENT] unsupported argument: kind 7", err.Error())

	wrapped := Parsing("bad file", stderrors.New("unexpected token"))
	assert.Equal(t, "[PARSING_ERROR] bad file: unexpected token", wrapped.Error())
}

func TestIsTypeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("cli: %w", IllegalState("no token"))

	assert.True(t, IsType(err, TypeIllegalState))
	assert.False(t, IsType(err, TypeNotFound))
	assert.False(t, IsType(stderrors.New("plain"), TypeIllegalState))
}

func TestErrorsIsMatchesCategory(t *testing.T) {
	err := NotFound("memento", "3")

	assert.True(t, stderrors.Is(err, &Error{Type: TypeNotFound}))
	assert.False(t, stderrors.Is(err, &Error{Type: TypeInput}))
}

func TestWithContext(t *testing.T) {
	err := Input("cycle").WithContext("from", 2).WithContext("to", 0)

	assert.Equal(t, map[string]any{"from": 2, "to": 0}, err.Context)
}
