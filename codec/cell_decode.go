package codec

import (
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/value"
	"github.com/rgchris/boron/wire"
)

// decodeCell reads one tagged cell from the front of src, translating wire
// atom/buffer indices through atomIDs/bufIDs (§4.8). It returns the cell and
// the number of bytes consumed.
func decodeCell(src []byte, atomIDs []value.AtomID, bufIDs []value.BufferID) (value.Cell, int, error) {
	if len(src) < 1 {
		return value.Cell{}, 0, errTruncated()
	}
	tagByte := src[0]
	n := 1
	sol := tagByte&solBit != 0
	kind := value.Kind(tagByte &^ solBit)
	if kind > value.MaxKind {
		return value.Cell{}, 0, errInvalidKind(kind)
	}

	c := value.Cell{Kind: kind, SOL: sol}

	switch {
	case kind == value.KindUnset, kind == value.KindNone, kind == value.KindError:
		// no payload

	case kind == value.KindLogic:
		v, used, err := wire.Varint(src[n:])
		if err != nil {
			return value.Cell{}, 0, errTruncated()
		}
		c.Logic = v != 0
		n += used

	case kind == value.KindChar:
		v, used, err := wire.Varint(src[n:])
		if err != nil {
			return value.Cell{}, 0, errTruncated()
		}
		c.Char = rune(v)
		n += used

	case kind == value.KindInt:
		v, used, err := wire.ZigZagVarint(src[n:])
		if err != nil {
			return value.Cell{}, 0, errTruncated()
		}
		c.Int = v
		n += used

	case kind == value.KindDecimal, kind == value.KindTime, kind == value.KindDate:
		f, err := wire.Float64(src[n:])
		if err != nil {
			return value.Cell{}, 0, errTruncated()
		}
		c.Decimal = f
		n += wire.Uint64Size

	case kind == value.KindBignum:
		v, err := wire.Int64(src[n:])
		if err != nil {
			return value.Cell{}, 0, errTruncated()
		}
		c.Bignum = v
		n += wire.Uint64Size

	case kind == value.KindDatatype:
		if len(src[n:]) < 1 {
			return value.Cell{}, 0, errTruncated()
		}
		c.DatatypeForm = value.DatatypeForm(src[n])
		n++
		if c.DatatypeForm == value.DatatypeSingle {
			if len(src[n:]) < 1 {
				return value.Cell{}, 0, errTruncated()
			}
			c.DatatypeKind = value.Kind(src[n])
			n++
		} else {
			mask0, err := wire.Uint32BE(src[n:])
			if err != nil {
				return value.Cell{}, 0, errTruncated()
			}
			n += 4
			mask1, used, err := wire.Varint(src[n:])
			if err != nil {
				return value.Cell{}, 0, errTruncated()
			}
			n += used
			c.DatatypeMask0 = mask0
			c.DatatypeMask1 = mask1
		}

	case kind == value.KindCoord:
		if len(src[n:]) < 1 {
			return value.Cell{}, 0, errTruncated()
		}
		c.CoordLen = src[n]
		n++
		for i := 0; i < int(c.CoordLen) && i < len(c.Coord); i++ {
			v, used, err := wire.ZigZagVarint(src[n:])
			if err != nil {
				return value.Cell{}, 0, errTruncated()
			}
			c.Coord[i] = int16(v)
			n += used
		}

	case kind == value.KindVec3:
		for i := range c.Vec3 {
			f, used, err := wire.Float32Bits(src[n:])
			if err != nil {
				return value.Cell{}, 0, errTruncated()
			}
			c.Vec3[i] = f
			n += used
		}

	case kind == value.KindTimecode:
		if len(src[n:]) < 1 {
			return value.Cell{}, 0, errTruncated()
		}
		flag := src[n]
		if flag > 1 {
			return value.Cell{}, 0, errs.ScriptErrorf("invalid TIMECODE drop-frame flag %d", flag)
		}
		c.TimecodeDrop = flag == 1
		n++
		for i := range c.Timecode {
			v, used, err := wire.ZigZagVarint(src[n:])
			if err != nil {
				return value.Cell{}, 0, errTruncated()
			}
			c.Timecode[i] = int16(v)
			n += used
		}

	case kind.IsWord():
		binding, used, err := decodeBinding(src[n:], bufIDs)
		if err != nil {
			return value.Cell{}, 0, err
		}
		n += used
		idx, used, err := wire.Varint(src[n:])
		if err != nil {
			return value.Cell{}, 0, errTruncated()
		}
		n += used
		if int(idx) >= len(atomIDs) {
			return value.Cell{}, 0, errs.ScriptErrorf("atom index %d out of range", idx)
		}
		c.Atom = atomIDs[idx]
		c.Binding = binding

	case kind == value.KindContext:
		idx, used, err := wire.Varint(src[n:])
		if err != nil {
			return value.Cell{}, 0, errTruncated()
		}
		n += used
		if int(idx) >= len(bufIDs) {
			return value.Cell{}, 0, errs.ScriptErrorf("buffer index %d out of range", idx)
		}
		c.Buf = bufIDs[idx]

	case kind.IsSeries():
		used, err := decodeSeries(src[n:], &c, bufIDs)
		if err != nil {
			return value.Cell{}, 0, err
		}
		n += used

	default:
		return value.Cell{}, 0, errInvalidKind(kind)
	}

	return c, n, nil
}

func decodeBinding(src []byte, bufIDs []value.BufferID) (value.Binding, int, error) {
	if len(src) < 1 {
		return value.Binding{}, 0, errTruncated()
	}
	tag := bindTag(src[0])
	n := 1
	switch tag {
	case bindTagUnbound:
		return value.Binding{}, n, nil
	case bindTagThread, bindTagEnv:
		ctxIdx, used, err := wire.Varint(src[n:])
		if err != nil {
			return value.Binding{}, 0, errTruncated()
		}
		n += used
		slot, used, err := wire.Varint(src[n:])
		if err != nil {
			return value.Binding{}, 0, errTruncated()
		}
		n += used
		if int(ctxIdx) >= len(bufIDs) {
			return value.Binding{}, 0, errs.ScriptErrorf("context buffer index %d out of range", ctxIdx)
		}
		kind := value.BindThread
		if tag == bindTagEnv {
			kind = value.BindEnv
		}
		return value.Binding{Kind: kind, Ctx: bufIDs[ctxIdx], Index: uint16(slot)}, n, nil
	default:
		return value.Binding{}, 0, errs.ScriptErrorf("invalid binding tag %d", tag)
	}
}

// decodeSeries reads a series cell's {buf, it, end} payload into c, setting
// c.End to -1 for ALL and ITER range modes (§4.8).
func decodeSeries(src []byte, c *value.Cell, bufIDs []value.BufferID) (int, error) {
	idx, used, err := wire.Varint(src)
	if err != nil {
		return 0, errTruncated()
	}
	n := used
	if int(idx) >= len(bufIDs) {
		return 0, errs.ScriptErrorf("buffer index %d out of range", idx)
	}
	c.Buf = bufIDs[idx]

	if len(src[n:]) < 1 {
		return 0, errTruncated()
	}
	mode := value.RangeMode(src[n])
	n++
	if mode > value.MaxRangeMode {
		return 0, errs.ScriptErrorf("Invalid serialized block")
	}

	switch mode {
	case value.RangeAll:
		c.It = 0
		c.End = -1
	case value.RangeIter:
		it, used, err := wire.Varint(src[n:])
		if err != nil {
			return 0, errTruncated()
		}
		n += used
		c.It = int32(it)
		c.End = -1
	case value.RangeSlice:
		it, used, err := wire.Varint(src[n:])
		if err != nil {
			return 0, errTruncated()
		}
		n += used
		end, used, err := wire.Varint(src[n:])
		if err != nil {
			return 0, errTruncated()
		}
		n += used
		c.It = int32(it)
		c.End = int32(end)
	}
	return n, nil
}
