// Package wire implements the low-level integer and byte-order codecs the
// BOR1 format is built from: the variable-width unsigned/ZigZag codec (§4.1)
// and the fixed-width big-endian/little-endian codec (§4.2). Nothing here
// knows about cells or buffers; it only packs and unpacks numbers.
package wire

import "fmt"

// Thresholds are max-inclusive values for each varint width (§4.1).
const (
	max1 = 0x3F
	max2 = 0x3FFF
	max3 = 0x3F_FFFF
)

// errTruncated is returned by Varint (and the fixed-width readers) when the
// input ends before a value is fully read.
var errTruncated = fmt.Errorf("unexpected end of varint")

// AppendVarint packs n into its minimal-width varint encoding and appends it
// to dst, returning the grown slice. The top two bits of the lead byte select
// the width: 00=1 byte, 01=2 bytes, 10=3 bytes, 11=5 bytes.
func AppendVarint(dst []byte, n uint32) []byte {
	switch {
	case n <= max1:
		return append(dst, byte(n))
	case n <= max2:
		hi := byte(n >> 8)
		lo := byte(n)
		return append(dst, 0x40|hi, lo)
	case n <= max3:
		hi := byte(n >> 16)
		mid := byte(n >> 8)
		lo := byte(n)
		return append(dst, 0x80|hi, mid, lo)
	default:
		return append(dst, 0xC0,
			byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
}

// Varint reads one varint from src, returning its value and the number of
// bytes consumed. It returns an error if src is too short for the width the
// lead byte declares.
func Varint(src []byte) (uint32, int, error) {
	if len(src) < 1 {
		return 0, 0, errTruncated
	}
	lead := src[0]
	switch lead & 0xC0 {
	case 0x00:
		return uint32(lead), 1, nil
	case 0x40:
		if len(src) < 2 {
			return 0, 0, errTruncated
		}
		return uint32(lead&0x3F)<<8 | uint32(src[1]), 2, nil
	case 0x80:
		if len(src) < 3 {
			return 0, 0, errTruncated
		}
		return uint32(lead&0x3F)<<16 | uint32(src[1])<<8 | uint32(src[2]), 3, nil
	default: // 0xC0
		if len(src) < 5 {
			return 0, 0, errTruncated
		}
		return uint32(src[1])<<24 | uint32(src[2])<<16 | uint32(src[3])<<8 | uint32(src[4]), 5, nil
	}
}

// ZigZag32 maps a signed 32-bit integer onto the unsigned range so that
// small-magnitude values (positive or negative) pack into few varint bytes.
func ZigZag32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// UnZigZag32 inverts ZigZag32.
func UnZigZag32(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1)
}

// AppendZigZag packs a signed integer as a ZigZag varint.
func AppendZigZag(dst []byte, n int32) []byte {
	return AppendVarint(dst, ZigZag32(n))
}

// ZigZagVarint reads a ZigZag varint, returning the signed value and bytes
// consumed.
func ZigZagVarint(src []byte) (int32, int, error) {
	u, n, err := Varint(src)
	if err != nil {
		return 0, 0, err
	}
	return UnZigZag32(u), n, nil
}
