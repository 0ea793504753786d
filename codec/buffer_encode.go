package codec

import (
	"github.com/rgchris/boron/env"
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/internal/atom"
	"github.com/rgchris/boron/internal/bufmap"
	"github.com/rgchris/boron/value"
	"github.com/rgchris/boron/wire"
)

// encodeBuffer appends one heap buffer's tagged payload to dst, per §4.6.
// Array-of-cells buffers recurse into encodeCell for each of their elements,
// discovering further buffers through bufs as it goes.
func encodeBuffer(dst []byte, buf *value.Buffer, host env.Environment, atoms *atom.Table, bufs *bufmap.Table) ([]byte, error) {
	dst = append(dst, byte(buf.Kind))

	switch buf.Kind {
	case value.BKindBinary, value.BKindBitset:
		dst = wire.AppendVarint(dst, uint32(len(buf.Bytes)))
		dst = append(dst, buf.Bytes...)

	case value.BKindString, value.BKindFile, value.BKindVector:
		dst = append(dst, buf.Form)
		dst = wire.AppendVarint(dst, uint32(buf.Used()))
		dst = append(dst, buf.Bytes...)

	case value.BKindBlock, value.BKindParen, value.BKindPath, value.BKindLitpath, value.BKindSetpath:
		dst = wire.AppendVarint(dst, uint32(len(buf.Cells)))
		var err error
		for _, c := range buf.Cells {
			dst, err = encodeCell(dst, c, host, atoms, bufs)
			if err != nil {
				return nil, err
			}
		}

	case value.BKindContext:
		used := len(buf.Slots)
		dst = wire.AppendVarint(dst, uint32(used))
		for _, a := range buf.Atoms {
			name, ok := host.AtomName(a)
			if !ok {
				return nil, errs.ScriptErrorf("unresolvable atom id %d", a)
			}
			dst = wire.AppendVarint(dst, uint32(atoms.Intern(name)))
		}
		var err error
		for _, c := range buf.Slots {
			dst, err = encodeCell(dst, c, host, atoms, bufs)
			if err != nil {
				return nil, err
			}
		}

	default:
		return nil, errInvalidBufferKind(buf.Kind)
	}

	return dst, nil
}
