package codec

import (
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/value"
)

func errInvalidKind(k value.Kind) error {
	return errs.ScriptErrorf("Invalid serialized block (kind %d)", k)
}

func errInvalidBufferKind(bk value.BKind) error {
	return errs.ScriptErrorf("Invalid serialized buffer type (%d)", bk)
}

func errTruncated() error {
	return errs.ScriptError("Unexpected end of serialized data")
}
