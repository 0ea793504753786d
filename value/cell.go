package value

// BufferID identifies a heap buffer within a host value environment. It is
// opaque to the codec: the host assigns and interprets it, the codec only
// compares ids for identity and threads them through the buffer map.
type BufferID uint32

// InvalidBuffer marks a cell field that does not reference any buffer.
const InvalidBuffer BufferID = 0

// GlobalThreadBuffer and GlobalEnvBuffer are the reserved buffer ids of the
// two "global" contexts every host environment carries: the per-thread
// (stack) root context and the persistent (environment) root context.
// Bindings into either are not preserved across serialization (§4.5 binding
// policy, GLOSSARY "Global context"); ordinary allocated buffers start at id
// 3 so they never collide with these two reserved ids.
const (
	GlobalThreadBuffer BufferID = 1
	GlobalEnvBuffer    BufferID = 2

	// FirstAllocatableBuffer is the lowest id a host environment should
	// hand out for a real buffer.
	FirstAllocatableBuffer BufferID = 3
)

// IsGlobalContext reports whether id names one of the two reserved global
// contexts ("a context whose buffer id has magnitude <= 1" in the original
// signed-id scheme, collapsed here to the two reserved unsigned ids).
func IsGlobalContext(id BufferID) bool {
	return id == GlobalThreadBuffer || id == GlobalEnvBuffer
}

// AtomID identifies an interned symbol. Atoms are 16-bit on the wire (§3).
type AtomID uint16

// Binding links a word cell to a slot in a context buffer.
type Binding struct {
	Kind  BindKind
	Ctx   BufferID
	Index uint16
}

// Unbound reports whether b carries no context reference.
func (b Binding) Unbound() bool { return b.Kind == BindUnbound }

// Cell is a fixed-size tagged value (§3). Not every field is meaningful for
// every Kind; see the per-family comments below. This mirrors the source's
// discriminated union, flattened into a single Go struct since the set of
// cell shapes is closed and small.
type Cell struct {
	Kind Kind
	// SOL is the start-of-line flag, significant for cells inside a BLOCK.
	SOL bool

	// Immediate scalars.
	Logic   bool    // LOGIC
	Char    rune    // CHAR
	Int     int32   // INT
	Decimal float64 // DECIMAL, also reused for TIME/DATE (calendrical float)
	Bignum  int64   // BIGNUM

	// COORD: 1..6 signed 16-bit components.
	Coord    [6]int16
	CoordLen uint8

	// VEC3: three 32-bit floats.
	Vec3 [3]float32

	// TIMECODE: four signed 16-bit components plus drop-frame flag.
	Timecode     [4]int16
	TimecodeDrop bool

	// DATATYPE.
	DatatypeForm  DatatypeForm
	DatatypeKind  Kind
	DatatypeMask0 uint32
	DatatypeMask1 uint32

	// Word-like cells (WORD, LITWORD, SETWORD, GETWORD, OPTION).
	Atom    AtomID
	Binding Binding

	// Series references and CONTEXT: Buf is the referenced heap buffer.
	// It is the start cursor; End is the exclusive bound, or -1 when the
	// cell is unsliced (tracks through the buffer's live end).
	Buf BufferID
	It  int32
	End int32
}

// Sliced reports whether a series cell carries a finite end bound.
func (c Cell) Sliced() bool { return c.End != -1 }

// NewWord builds an unbound word-like cell of the given kind and atom.
func NewWord(kind Kind, atom AtomID) Cell {
	return Cell{Kind: kind, Atom: atom}
}

// NewSeries builds an unsliced series cell referencing buf at offset 0.
func NewSeries(kind Kind, buf BufferID) Cell {
	return Cell{Kind: kind, Buf: buf, It: 0, End: -1}
}

// NewSlice builds a sliced series cell referencing buf over [it, end).
func NewSlice(kind Kind, buf BufferID, it, end int32) Cell {
	return Cell{Kind: kind, Buf: buf, It: it, End: end}
}
