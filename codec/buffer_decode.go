package codec

import (
	"github.com/rgchris/boron/env"
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/value"
	"github.com/rgchris/boron/wire"
)

// decodeBuffer reads one buffer's tagged payload from the front of src and
// fills buf in place (§4.9), translating cell references through atomIDs and
// bufIDs. It returns the number of bytes consumed.
func decodeBuffer(src []byte, buf *value.Buffer, host env.Environment, atomIDs []value.AtomID, bufIDs []value.BufferID) (int, error) {
	if len(src) < 1 {
		return 0, errTruncated()
	}
	kind := value.BKind(src[0])
	n := 1

	switch kind {
	case value.BKindBinary, value.BKindBitset:
		used, consumed, err := wire.Varint(src[n:])
		if err != nil {
			return 0, errTruncated()
		}
		n += consumed
		if len(src[n:]) < int(used) {
			return 0, errTruncated()
		}
		if err := host.InitBuffer(buf.ID, kind, int(used)); err != nil {
			return 0, err
		}
		buf.Bytes = append(buf.Bytes[:0], src[n:n+int(used)]...)
		n += int(used)

	case value.BKindString, value.BKindFile, value.BKindVector:
		if len(src[n:]) < 1 {
			return 0, errTruncated()
		}
		form := src[n]
		n++
		used, consumed, err := wire.Varint(src[n:])
		if err != nil {
			return 0, errTruncated()
		}
		n += consumed
		elemSize := value.ElemSize(kind, value.Form(form))
		total := int(used) * int(elemSize)
		if len(src[n:]) < total {
			return 0, errTruncated()
		}
		if err := host.InitBuffer(buf.ID, kind, int(used)); err != nil {
			return 0, err
		}
		buf.Form = form
		buf.ElemSize = elemSize
		buf.Bytes = append(buf.Bytes[:0], src[n:n+total]...)
		n += total

	case value.BKindBlock, value.BKindParen, value.BKindPath, value.BKindLitpath, value.BKindSetpath:
		used, consumed, err := wire.Varint(src[n:])
		if err != nil {
			return 0, errTruncated()
		}
		n += consumed
		if err := host.InitBuffer(buf.ID, kind, int(used)); err != nil {
			return 0, err
		}
		for i := uint32(0); i < used; i++ {
			c, consumed, err := decodeCell(src[n:], atomIDs, bufIDs)
			if err != nil {
				return 0, err
			}
			n += consumed
			buf.Cells = append(buf.Cells, c)
		}

	case value.BKindContext:
		used, consumed, err := wire.Varint(src[n:])
		if err != nil {
			return 0, errTruncated()
		}
		n += consumed
		if err := host.InitBuffer(buf.ID, kind, int(used)); err != nil {
			return 0, err
		}
		for i := uint32(0); i < used; i++ {
			idx, consumed, err := wire.Varint(src[n:])
			if err != nil {
				return 0, errTruncated()
			}
			n += consumed
			if int(idx) >= len(atomIDs) {
				return 0, errs.ScriptErrorf("atom index %d out of range", idx)
			}
			buf.Atoms = append(buf.Atoms, atomIDs[idx])
		}
		host.SortContext(buf.ID)

		for i := uint32(0); i < used; i++ {
			c, consumed, err := decodeCell(src[n:], atomIDs, bufIDs)
			if err != nil {
				return 0, err
			}
			n += consumed
			buf.Slots = append(buf.Slots, c)
		}

	default:
		return 0, errInvalidBufferKind(kind)
	}

	return n, nil
}
