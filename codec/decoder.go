package codec

import (
	"github.com/rgchris/boron/env"
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/value"
)

// Decode validates and rematerializes a BOR1 byte stream into a value graph
// inside host, per §4.9. On any failure discovered after buffers have been
// allocated, every buffer that was not yet filled is initialized to an
// empty valid BINARY (§4.10), so the host's reference-counting/sweep
// discipline stays sound even though the caller receives only an error.
func Decode(host env.Environment, data []byte) (value.Cell, error) {
	hdr, err := parseHeader(data, value.BKindBlock)
	if err != nil {
		return value.Cell{}, err
	}

	var atomIDs []value.AtomID
	if hdr.atomsOffset != 0 {
		if int(hdr.atomsOffset) >= len(data) {
			return value.Cell{}, errs.ScriptError("Unexpected end of serialized data")
		}
		atomIDs = host.InternNames(data[hdr.atomsOffset:])
	}

	if hdr.bufferCount == 0 {
		return value.Cell{}, errs.ScriptError("Invalid serialized block")
	}

	bufIDs := host.AllocateBuffers(int(hdr.bufferCount))

	filled := 0
	cleanup := func() {
		for i := filled; i < len(bufIDs); i++ {
			_ = host.InitBuffer(bufIDs[i], value.BKindBinary, 0)
		}
	}

	pos := HeaderSize
	for i := 0; i < len(bufIDs); i++ {
		buf, ok := host.Buffer(bufIDs[i])
		if !ok {
			cleanup()
			return value.Cell{}, errs.ScriptErrorf("unserialize: unknown buffer %d", bufIDs[i])
		}
		if pos >= len(data) {
			cleanup()
			return value.Cell{}, errs.ScriptError("Unexpected end of serialized data")
		}
		consumed, err := decodeBuffer(data[pos:], buf, host, atomIDs, bufIDs)
		if err != nil {
			cleanup()
			return value.Cell{}, err
		}
		pos += consumed
		filled = i + 1
	}

	return host.NewBlock(bufIDs[0]), nil
}

// Unserialize is the §6.2 entry point: it fails with a TypeError if bin is
// not a BINARY cell, otherwise decodes its referenced bytes into a BLOCK
// cell. bin's own cursor (It/End) is honored, so a sliced binary decodes
// only its live range.
func Unserialize(host env.Environment, bin value.Cell) (value.Cell, error) {
	if bin.Kind != value.KindBinary {
		return value.Cell{}, errs.TypeError("unserialize: argument is not a binary")
	}

	buf, ok := host.Buffer(bin.Buf)
	if !ok {
		return value.Cell{}, errs.TypeError("unserialize: argument is not a binary")
	}

	start := int(bin.It)
	end := buf.Used()
	if bin.Sliced() {
		end = int(bin.End)
	}
	if start < 0 || end < start || end > len(buf.Bytes) {
		return value.Cell{}, errs.ScriptError("Invalid serialized block")
	}

	return Decode(host, buf.Bytes[start:end])
}
