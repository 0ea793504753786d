package codec

import (
	"github.com/rgchris/boron/env"
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/internal/atom"
	"github.com/rgchris/boron/internal/bufmap"
	"github.com/rgchris/boron/value"
	"github.com/rgchris/boron/wire"
)

// solBit packs the start-of-line flag into the high bit of a tag byte; the
// low 7 bits carry the Kind (§4.5).
const solBit = 0x80

// bindTag is the 1-byte binding-kind tag a word-like cell's payload leads
// with (§4.5 "1 byte binding tag").
type bindTag uint8

const (
	bindTagUnbound bindTag = iota
	bindTagThread
	bindTagEnv
)

// encodeCell appends one tagged cell to dst, interning any atom it
// references (by resolving its name through host) into atoms, and mapping
// any buffer it references through bufs. Mapping a not-yet-seen buffer
// schedules it for later serialization (§4.4's side effect); this is how
// the encoder discovers reachable buffers.
func encodeCell(dst []byte, c value.Cell, host env.Environment, atoms *atom.Table, bufs *bufmap.Table) ([]byte, error) {
	tag := byte(c.Kind)
	if c.SOL {
		tag |= solBit
	}
	dst = append(dst, tag)

	switch {
	case c.Kind == value.KindUnset, c.Kind == value.KindNone, c.Kind == value.KindError:
		// no payload

	case c.Kind == value.KindLogic:
		var n uint32
		if c.Logic {
			n = 1
		}
		dst = wire.AppendVarint(dst, n)

	case c.Kind == value.KindChar:
		dst = wire.AppendVarint(dst, uint32(c.Char))

	case c.Kind == value.KindInt:
		dst = wire.AppendZigZag(dst, c.Int)

	case c.Kind == value.KindDecimal, c.Kind == value.KindTime, c.Kind == value.KindDate:
		dst = wire.AppendFloat64(dst, c.Decimal)

	case c.Kind == value.KindBignum:
		dst = wire.AppendInt64(dst, c.Bignum)

	case c.Kind == value.KindDatatype:
		dst = append(dst, byte(c.DatatypeForm))
		if c.DatatypeForm == value.DatatypeSingle {
			dst = append(dst, byte(c.DatatypeKind))
		} else {
			dst = wire.AppendUint32BE(dst, c.DatatypeMask0)
			dst = wire.AppendVarint(dst, c.DatatypeMask1)
		}

	case c.Kind == value.KindCoord:
		dst = append(dst, c.CoordLen)
		for i := 0; i < int(c.CoordLen); i++ {
			dst = wire.AppendZigZag(dst, int32(c.Coord[i]))
		}

	case c.Kind == value.KindVec3:
		for _, f := range c.Vec3 {
			dst = wire.AppendFloat32Bits(dst, f)
		}

	case c.Kind == value.KindTimecode:
		var flag byte
		if c.TimecodeDrop {
			flag = 1
		}
		dst = append(dst, flag)
		for _, v := range c.Timecode {
			dst = wire.AppendZigZag(dst, int32(v))
		}

	case c.Kind.IsWord():
		dst = encodeBinding(dst, c.Binding, bufs)
		name, ok := host.AtomName(c.Atom)
		if !ok {
			return nil, errs.ScriptErrorf("unresolvable atom id %d", c.Atom)
		}
		dst = wire.AppendVarint(dst, uint32(atoms.Intern(name)))

	case c.Kind == value.KindContext:
		dst = wire.AppendVarint(dst, uint32(bufs.Map(c.Buf)))

	case c.Kind.IsSeries():
		dst = encodeSeries(dst, c, bufs)

	default:
		return nil, errInvalidKind(c.Kind)
	}

	return dst, nil
}

// encodeBinding applies the binding policy of §4.5: bindings into a global
// (magnitude <= 1) context are rewritten to UNBOUND; anything that is not a
// THREAD or ENV binding is also UNBOUND. Like every other buffer reference
// in this file, the context id is written through bufs so the decoder's
// wire index resolves correctly (§4.8: "a THREAD binding uses the decoded
// ctx as a wire buffer index").
func encodeBinding(dst []byte, b value.Binding, bufs *bufmap.Table) []byte {
	switch b.Kind {
	case value.BindThread, value.BindEnv:
		if value.IsGlobalContext(b.Ctx) {
			return append(dst, byte(bindTagUnbound))
		}
		tag := bindTagThread
		if b.Kind == value.BindEnv {
			tag = bindTagEnv
		}
		dst = append(dst, byte(tag))
		dst = wire.AppendVarint(dst, uint32(bufs.Map(b.Ctx)))
		dst = wire.AppendVarint(dst, uint32(b.Index))
		return dst
	default:
		return append(dst, byte(bindTagUnbound))
	}
}

func encodeSeries(dst []byte, c value.Cell, bufs *bufmap.Table) []byte {
	dst = wire.AppendVarint(dst, uint32(bufs.Map(c.Buf)))
	switch {
	case c.Sliced():
		dst = append(dst, byte(value.RangeSlice))
		dst = wire.AppendVarint(dst, uint32(c.It))
		dst = wire.AppendVarint(dst, uint32(c.End))
	case c.It != 0:
		dst = append(dst, byte(value.RangeIter))
		dst = wire.AppendVarint(dst, uint32(c.It))
	default:
		dst = append(dst, byte(value.RangeAll))
	}
	return dst
}
