// Package errs defines the two sentinel error kinds the BOR1 codec can
// return (§7): a TypeError for malformed arguments, and a ScriptError for
// format violations discovered during decode (or an unsupported buffer kind
// during encode). Call sites build these with TypeError, ScriptError or
// ScriptErrorf, which attach a detail message to the sentinel; Error returns
// the detail message alone, and errors.Is still matches the sentinel.
package errs

import (
	"errors"
	"fmt"
)

// ErrTypeError is returned when an entry-point argument has the wrong shape:
// Serialize given a non-block, Unserialize given a non-binary.
var ErrTypeError = errors.New("type error")

// ErrScriptError is returned for internal format violations: bad magic,
// truncated input, an out-of-range kind or range-mode, or (during encode) an
// unsupported buffer kind.
var ErrScriptError = errors.New("script error")

// TypeError wraps ErrTypeError with a detail message.
func TypeError(msg string) error {
	return &wrapped{kind: ErrTypeError, msg: msg}
}

// ScriptError wraps ErrScriptError with a detail message.
func ScriptError(msg string) error {
	return &wrapped{kind: ErrScriptError, msg: msg}
}

// ScriptErrorf wraps ErrScriptError with a formatted detail message.
func ScriptErrorf(format string, args ...any) error {
	return &wrapped{kind: ErrScriptError, msg: fmt.Sprintf(format, args...)}
}

type wrapped struct {
	kind error
	msg  string
}

func (w *wrapped) Error() string { return w.msg }
func (w *wrapped) Unwrap() error { return w.kind }
