package env

import (
	"fmt"

	"github.com/rgchris/boron/value"
)

func errUnknownBuffer(id value.BufferID) error {
	return fmt.Errorf("env: unknown buffer id %d", id)
}
