// Package codec implements the BOR1 wire format itself: the header (§4.7),
// the cell encoder/decoder (§4.5, §4.8), and the buffer encoder/decoder
// (§4.6, §4.9). Serialize (backed by Encoder) and Unserialize (backed by
// Decode) are the entry points; everything else in this package is their
// supporting machinery.
package codec

import (
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/value"
	"github.com/rgchris/boron/wire"
)

// Magic is the four-byte tag every BOR1 stream begins with.
var Magic = [4]byte{'B', 'O', 'R', '1'}

// HeaderSize is the number of explicit header bytes written before the
// buffer section begins. The byte at offset HeaderSize is simultaneously
// the header's "first BKIND byte" validation field (§4.7) and the literal
// first byte of buffer 0's payload; it is not duplicated on the wire.
const HeaderSize = 12

// header is the parsed form of the 12-byte preamble.
type header struct {
	atomsOffset uint32
	bufferCount uint32
}

func writeHeaderPlaceholder(dst []byte) []byte {
	dst = append(dst, Magic[:]...)
	dst = wire.AppendUint32BE(dst, 0) // atoms-offset, patched later
	dst = wire.AppendUint32BE(dst, 0) // buffer-count, patched later
	return dst
}

func patchHeader(buf []byte, atomsOffset, bufferCount uint32) {
	wire.PutUint32BE(buf[4:8], atomsOffset)
	wire.PutUint32BE(buf[8:12], bufferCount)
}

// parseHeader validates and reads the 12-byte preamble, and checks that the
// byte immediately following it is the expected root BKind.
func parseHeader(data []byte, rootKind value.BKind) (header, error) {
	if len(data) < HeaderSize+1 {
		return header{}, errs.ScriptError("Unexpected end of serialized data")
	}
	if data[0] != Magic[0] || data[1] != Magic[1] || data[2] != Magic[2] || data[3] != Magic[3] {
		return header{}, errs.ScriptError("Invalid serialized data header")
	}
	atomsOffset, _ := wire.Uint32BE(data[4:8])
	bufferCount, _ := wire.Uint32BE(data[8:12])
	if value.BKind(data[HeaderSize]) != rootKind {
		return header{}, errs.ScriptError("Invalid serialized data header")
	}
	return header{atomsOffset: atomsOffset, bufferCount: bufferCount}, nil
}
