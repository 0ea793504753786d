package wire

import (
	"encoding/binary"
	"math"
)

// AppendUint32BE appends n as 4 big-endian bytes, used for header fields and
// the DATATYPE mask0 word.
func AppendUint32BE(dst []byte, n uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, n)
}

// Uint32BE reads a 4-byte big-endian unsigned integer from the front of src.
func Uint32BE(src []byte) (uint32, error) {
	if len(src) < 4 {
		return 0, errTruncated
	}
	return binary.BigEndian.Uint32(src[:4]), nil
}

// PutUint32BE writes n as 4 big-endian bytes into dst, which must be at
// least 4 bytes long. Used to patch header fields in place after the rest of
// the stream has been written.
func PutUint32BE(dst []byte, n uint32) {
	binary.BigEndian.PutUint32(dst, n)
}

// Uint64Size is the on-wire width of the 64-bit fixed codec.
const Uint64Size = 8

// AppendUint64LE appends n as 8 bytes in the wire's pinned little-endian
// layout (§4.2, §5 "Memory ordering"). Hosts that are natively big-endian
// must still produce this exact byte order.
func AppendUint64LE(dst []byte, n uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, n)
}

// Uint64LE reads the wire's 8-byte little-endian unsigned integer.
func Uint64LE(src []byte) (uint64, error) {
	if len(src) < 8 {
		return 0, errTruncated
	}
	return binary.LittleEndian.Uint64(src[:8]), nil
}

// AppendFloat64 appends f's IEEE-754 bit pattern in the wire's 64-bit layout.
// Used for DECIMAL, TIME, DATE.
func AppendFloat64(dst []byte, f float64) []byte {
	return AppendUint64LE(dst, math.Float64bits(f))
}

// Float64 reads an IEEE-754 double from the wire's 64-bit layout.
func Float64(src []byte) (float64, error) {
	bits, err := Uint64LE(src)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// AppendInt64 appends n's bit pattern in the wire's 64-bit layout. Used for
// BIGNUM.
func AppendInt64(dst []byte, n int64) []byte {
	return AppendUint64LE(dst, uint64(n))
}

// Int64 reads a signed 64-bit integer from the wire's 64-bit layout.
func Int64(src []byte) (int64, error) {
	bits, err := Uint64LE(src)
	if err != nil {
		return 0, err
	}
	return int64(bits), nil
}

// AppendFloat32Bits appends f's raw IEEE-754 bit pattern as a varint, the
// encoding VEC3's three components use (§4.5 "three varints (raw float
// bits)").
func AppendFloat32Bits(dst []byte, f float32) []byte {
	return AppendVarint(dst, math.Float32bits(f))
}

// Float32Bits reads one VEC3 component.
func Float32Bits(src []byte) (float32, int, error) {
	bits, n, err := Varint(src)
	if err != nil {
		return 0, 0, err
	}
	return math.Float32frombits(bits), n, nil
}
