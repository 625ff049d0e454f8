package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailError_Render(t *testing.T) {
	err := &DetailError{
		Type:     "not found",
		Message:  "block \"foo\" has no definition",
		Location: "/home/dev/gr-howto",
		Hint:     "Run 'grmod list' to see the module's blocks.",
		Cause:    ErrNotFound,
	}

	msg := err.Error()
	assert.Contains(t, msg, "Error: not found")
	assert.Contains(t, msg, "Location: /home/dev/gr-howto")
	assert.Contains(t, msg, "block \"foo\" has no definition")
	assert.Contains(t, msg, "Hint:")
}

func TestDetailError_Unwrap(t *testing.T) {
	err := NewNotFoundError("gone", "/tmp", "")
	assert.True(t, errors.Is(err, ErrNotFound))

	err = NewValidationError("bad name", "")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrTool, "rename failed")
	assert.True(t, errors.Is(err, ErrTool))
	assert.Contains(t, err.Error(), "rename failed")
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	err := NewExitError(inner, 5)

	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, 5, err.Code)
	assert.True(t, errors.Is(err, inner))
}
