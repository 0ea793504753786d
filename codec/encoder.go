package codec

import (
	"github.com/rgchris/boron/env"
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/internal/atom"
	"github.com/rgchris/boron/internal/bufmap"
	"github.com/rgchris/boron/value"
)

// Encoder is a short-lived value created per Serialize call (§3 Lifecycle).
// It owns the atom map and buffer map scratch tables for one encode; they
// are dropped together with the Encoder, which Serialize discards on
// success and failure alike. Encode does not reset the tables, so a second
// Encode on the same Encoder continues from the first call's tables.
type Encoder struct {
	atoms *atom.Table
	bufs  *bufmap.Table
}

// NewEncoder returns a fresh Encoder with empty scratch tables.
func NewEncoder() *Encoder {
	return &Encoder{atoms: atom.New(), bufs: bufmap.New()}
}

// Encode serializes the block referenced by root into a BOR1 byte stream
// (§4.7 header, §4.4 buffer discovery, §4.6 buffer payloads, §4.3 atom
// table). root must be the root buffer id (mapped first, so it receives
// wire index 0 per the buffer map's invariant).
func (e *Encoder) Encode(host env.Environment, root value.BufferID) ([]byte, error) {
	e.bufs.Map(root) // guarantees wire index 0

	dst := writeHeaderPlaceholder(nil)

	for i := 0; i < e.bufs.Len(); i++ {
		id := e.bufs.At(i)
		buf, ok := host.Buffer(id)
		if !ok {
			return nil, errs.ScriptErrorf("serialize: unknown buffer %d", id)
		}
		var err error
		dst, err = encodeBuffer(dst, buf, host, e.atoms, e.bufs)
		if err != nil {
			return nil, err
		}
	}

	var atomsOffset uint32
	if atomBytes := e.atoms.Bytes(); len(atomBytes) > 0 {
		atomsOffset = uint32(len(dst))
		dst = append(dst, atomBytes...)
	}

	patchHeader(dst, atomsOffset, uint32(e.bufs.Len()))
	return dst, nil
}

// Serialize is the §6.2 entry point: it fails with a TypeError if block is
// not a BLOCK cell, otherwise returns a BINARY cell over the encoded bytes.
func Serialize(host env.Environment, block value.Cell) (value.Cell, error) {
	if block.Kind != value.KindBlock {
		return value.Cell{}, errs.TypeError("serialize: argument is not a block")
	}

	data, err := NewEncoder().Encode(host, block.Buf)
	if err != nil {
		return value.Cell{}, err
	}

	return host.NewBinary(data), nil
}
