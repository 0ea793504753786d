// Package value defines the wire-independent data model for the BOR1 codec:
// the tagged cell union, heap buffer descriptors, and the small id types used
// to cross-reference them. Nothing in this package knows how to read or write
// bytes; that lives in package wire and package codec.
package value

// Kind is the tag of a cell, drawn from the closed KIND enumeration.
// The low 7 bits of an encoded tag byte hold a Kind; the high bit holds the
// start-of-line flag (see Cell.SOL).
type Kind uint8

// Immediate scalars, small aggregates, word-like cells, series references,
// the context reference, and the error stub. Order matches the wire tag
// values and must not change without bumping the magic header.
const (
	KindUnset Kind = iota
	KindNone
	KindLogic
	KindChar
	KindInt
	KindDecimal
	KindBignum
	KindTime
	KindDate
	KindCoord
	KindVec3
	KindTimecode
	KindDatatype
	KindWord
	KindLitword
	KindSetword
	KindGetword
	KindOption
	KindBinary
	KindBitset
	KindString
	KindFile
	KindVector
	KindBlock
	KindParen
	KindPath
	KindLitpath
	KindSetpath
	KindContext
	KindError

	kindCount
)

// MaxKind is the highest valid Kind value; decoders reject anything above it.
const MaxKind = KindError

// String renders a Kind's name for diagnostics and error messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

var kindNames = [...]string{
	KindUnset:    "unset",
	KindNone:     "none",
	KindLogic:    "logic",
	KindChar:     "char",
	KindInt:      "int",
	KindDecimal:  "decimal",
	KindBignum:   "bignum",
	KindTime:     "time",
	KindDate:     "date",
	KindCoord:    "coord",
	KindVec3:     "vec3",
	KindTimecode: "timecode",
	KindDatatype: "datatype",
	KindWord:     "word",
	KindLitword:  "lit-word",
	KindSetword:  "set-word",
	KindGetword:  "get-word",
	KindOption:   "option",
	KindBinary:   "binary",
	KindBitset:   "bitset",
	KindString:   "string",
	KindFile:     "file",
	KindVector:   "vector",
	KindBlock:    "block",
	KindParen:    "paren",
	KindPath:     "path",
	KindLitpath:  "lit-path",
	KindSetpath:  "set-path",
	KindContext:  "context",
	KindError:    "error",
}

// IsWord reports whether k is one of the word-like kinds (WORD, LITWORD,
// SETWORD, GETWORD, OPTION), which carry an atom and an optional binding.
func (k Kind) IsWord() bool {
	return k >= KindWord && k <= KindOption
}

// IsSeries reports whether k is a series-reference kind, which carries a
// {buf, it, end} cursor into a heap buffer.
func (k Kind) IsSeries() bool {
	switch k {
	case KindBinary, KindBitset, KindString, KindFile, KindVector,
		KindBlock, KindParen, KindPath, KindLitpath, KindSetpath:
		return true
	default:
		return false
	}
}

// DatatypeForm distinguishes DATATYPE's two payload shapes.
type DatatypeForm uint8

const (
	// DatatypeSingle carries a single Kind index.
	DatatypeSingle DatatypeForm = iota
	// DatatypeMask carries a two-word bitmask over the KIND enumeration.
	DatatypeMask
)

// BindKind distinguishes how a word cell is bound to a context slot.
type BindKind uint8

const (
	// BindUnbound means the word carries no context reference.
	BindUnbound BindKind = iota
	// BindThread binds into a per-thread (stack) context.
	BindThread
	// BindEnv binds into a persistent (environment) context.
	BindEnv
)

// RangeMode selects a series cell's cursor shape on the wire.
type RangeMode uint8

const (
	// RangeAll is an unsliced series: it=0, end=-1 (through the live end).
	RangeAll RangeMode = iota
	// RangeIter carries only a start cursor; end is still -1.
	RangeIter
	// RangeSlice carries both bounds.
	RangeSlice

	// MaxRangeMode is the highest valid wire value for RangeMode.
	MaxRangeMode = RangeSlice
)

// BKind is the tag of a heap buffer, drawn from the closed BKIND enumeration.
type BKind uint8

const (
	BKindBinary BKind = iota + 1
	BKindBitset
	BKindString
	BKindFile
	BKindVector
	BKindBlock
	BKindParen
	BKindPath
	BKindLitpath
	BKindSetpath
	BKindContext
)

// IsSeriesArray reports whether bk holds its payload as used cells (BLOCK,
// PAREN, PATH, LITPATH, SETPATH) as opposed to raw/element bytes.
func (bk BKind) IsSeriesArray() bool {
	switch bk {
	case BKindBlock, BKindParen, BKindPath, BKindLitpath, BKindSetpath:
		return true
	default:
		return false
	}
}

func (bk BKind) String() string {
	switch bk {
	case BKindBinary:
		return "binary"
	case BKindBitset:
		return "bitset"
	case BKindString:
		return "string"
	case BKindFile:
		return "file"
	case BKindVector:
		return "vector"
	case BKindBlock:
		return "block"
	case BKindParen:
		return "paren"
	case BKindPath:
		return "path"
	case BKindLitpath:
		return "lit-path"
	case BKindSetpath:
		return "set-path"
	case BKindContext:
		return "context"
	default:
		return "unknown"
	}
}

// KindForSeriesBuffer maps a series cell's Kind to the BKind of the buffer it
// must reference, for validation and for constructing fresh buffers.
func KindForSeriesBuffer(k Kind) BKind {
	switch k {
	case KindBinary:
		return BKindBinary
	case KindBitset:
		return BKindBitset
	case KindString:
		return BKindString
	case KindFile:
		return BKindFile
	case KindVector:
		return BKindVector
	case KindBlock:
		return BKindBlock
	case KindParen:
		return BKindParen
	case KindPath:
		return BKindPath
	case KindLitpath:
		return BKindLitpath
	case KindSetpath:
		return BKindSetpath
	default:
		return 0
	}
}
