package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeError(t *testing.T) {
	err := TypeError("bad argument")
	assert.Equal(t, "bad argument", err.Error())
	assert.True(t, errors.Is(err, ErrTypeError))
	assert.False(t, errors.Is(err, ErrScriptError))
}

func TestScriptError(t *testing.T) {
	err := ScriptError("bad magic")
	assert.Equal(t, "bad magic", err.Error())
	assert.True(t, errors.Is(err, ErrScriptError))
	assert.False(t, errors.Is(err, ErrTypeError))
}

func TestScriptErrorf(t *testing.T) {
	err := ScriptErrorf("invalid kind %d", 42)
	assert.Equal(t, "invalid kind 42", err.Error())
	assert.True(t, errors.Is(err, ErrScriptError))
}
