package value

// Buffer is a host-managed heap object reachable from a serialized graph:
// the payload behind a series or context cell (§3 "Heap buffers").
//
// Only the fields relevant to Kind are populated; the zero value of the
// others is ignored by the codec.
type Buffer struct {
	ID   BufferID
	Kind BKind

	// ElemSize and Form apply to STR, FILE, VECTOR: element width in bytes
	// (1, 2, 4, or 8) and the encoding/subtype byte (e.g. Latin-1 vs UTF-16
	// for strings, F32/I16/... for vectors).
	ElemSize uint8
	Form     uint8

	// Bytes holds the raw payload for BIN, BITSET (used bytes) and for STR,
	// FILE, VECTOR (used*ElemSize bytes, carried on the wire and copied at
	// decode time as raw bytes, with no byte-order conversion).
	Bytes []byte

	// Cells holds the payload for BLOCK, PAREN, PATH, LITPATH, SETPATH.
	Cells []Cell

	// Atoms and Slots hold a CONTEXT's word-atom table and its value slots,
	// both in slot order. The slots themselves are never reordered; Sort
	// builds a separate atom-sorted index (lookupAtoms/lookupSlots) for
	// FindSlot, per §4.9's "sorts it, then decodes the value slots".
	Atoms []AtomID
	Slots []Cell

	lookupAtoms []AtomID
	lookupSlots []int
}

// Used returns the buffer's logical element count: len(Bytes) for
// BIN/BITSET, len(Bytes)/ElemSize for STR/FILE/VECTOR (0 when ElemSize is 0),
// len(Cells) for array-of-cells kinds, len(Slots) for CONTEXT.
func (b *Buffer) Used() int {
	switch b.Kind {
	case BKindBinary, BKindBitset:
		return len(b.Bytes)
	case BKindString, BKindFile, BKindVector:
		sz := int(b.ElemSize)
		if sz == 0 {
			return 0
		}
		return len(b.Bytes) / sz
	case BKindContext:
		return len(b.Slots)
	default:
		return len(b.Cells)
	}
}

// NewBlock constructs a BLOCK-kind buffer with the given id holding cells.
func NewBlock(id BufferID, cells []Cell) *Buffer {
	return &Buffer{ID: id, Kind: BKindBlock, Cells: cells}
}
