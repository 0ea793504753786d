package env

import (
	"github.com/rgchris/boron/internal/atom"
	"github.com/rgchris/boron/value"
)

// Memory is an in-memory Environment: a plain map of buffers plus an atom
// table, with no persistence and no external resources. It is the reference
// host used by this repo's own tests and by any embedder that just needs a
// working value graph without wiring its own heap.
//
// Memory is not safe for concurrent use (§5: the codec is single-threaded
// with respect to the environment it touches).
type Memory struct {
	buffers map[value.BufferID]*value.Buffer
	nextID  value.BufferID
	atoms   *atom.Table
}

// Option configures a new Memory environment.
type Option func(*Memory)

// WithCapacity hints the initial size of the buffer table, useful when the
// caller knows roughly how many buffers a graph will need.
func WithCapacity(n int) Option {
	return func(m *Memory) {
		m.buffers = make(map[value.BufferID]*value.Buffer, n)
	}
}

// New returns an empty in-memory host environment.
func New(opts ...Option) *Memory {
	m := &Memory{
		buffers: make(map[value.BufferID]*value.Buffer),
		nextID:  value.FirstAllocatableBuffer,
		atoms:   atom.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ Environment = (*Memory)(nil)

func (m *Memory) AllocateBuffers(n int) []value.BufferID {
	ids := make([]value.BufferID, n)
	for i := 0; i < n; i++ {
		id := m.nextID
		m.nextID++
		m.buffers[id] = &value.Buffer{ID: id}
		ids[i] = id
	}
	return ids
}

func (m *Memory) InitBuffer(id value.BufferID, kind value.BKind, capacityHint int) error {
	buf, ok := m.buffers[id]
	if !ok {
		return errUnknownBuffer(id)
	}
	buf.Kind = kind
	switch kind {
	case value.BKindBinary, value.BKindBitset:
		buf.Bytes = make([]byte, 0, capacityHint)
	case value.BKindString, value.BKindFile, value.BKindVector:
		buf.Bytes = make([]byte, 0, capacityHint)
	case value.BKindBlock, value.BKindParen, value.BKindPath, value.BKindLitpath, value.BKindSetpath:
		buf.Cells = make([]value.Cell, 0, capacityHint)
	case value.BKindContext:
		buf.Atoms = make([]value.AtomID, 0, capacityHint)
		buf.Slots = make([]value.Cell, 0, capacityHint)
	}
	return nil
}

func (m *Memory) Buffer(id value.BufferID) (*value.Buffer, bool) {
	buf, ok := m.buffers[id]
	return buf, ok
}

func (m *Memory) InternAtom(name string) value.AtomID {
	return value.AtomID(m.atoms.Intern(name))
}

func (m *Memory) AtomName(id value.AtomID) (string, bool) {
	names := m.atoms.Names()
	if int(id) >= len(names) {
		return "", false
	}
	return names[id], true
}

func (m *Memory) InternNames(table []byte) []value.AtomID {
	names := atom.ParseNames(table)
	ids := make([]value.AtomID, len(names))
	for i, name := range names {
		ids[i] = value.AtomID(m.atoms.Intern(name))
	}
	return ids
}

func (m *Memory) SortContext(id value.BufferID) {
	if buf, ok := m.buffers[id]; ok {
		buf.Sort()
	}
}

func (m *Memory) NewBinary(data []byte) value.Cell {
	id := m.nextID
	m.nextID++
	m.buffers[id] = &value.Buffer{ID: id, Kind: value.BKindBinary, Bytes: data}
	return value.Cell{Kind: value.KindBinary, Buf: id, It: 0, End: -1}
}

func (m *Memory) NewBlock(id value.BufferID) value.Cell {
	return value.Cell{Kind: value.KindBlock, Buf: id, It: 0, End: -1}
}

// AllocBlock is a test/embedding convenience: it allocates and initializes a
// single buffer of kind in one step and returns its id.
func (m *Memory) AllocBlock(kind value.BKind, capacityHint int) value.BufferID {
	ids := m.AllocateBuffers(1)
	_ = m.InitBuffer(ids[0], kind, capacityHint)
	return ids[0]
}
