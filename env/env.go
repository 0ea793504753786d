// Package env implements the Host Value Environment the BOR1 codec
// consumes (spec §6.1): buffer registry, atom registry, context utilities,
// and a result-cell factory. The codec package depends only on the
// Environment interface; Memory is the in-memory reference implementation a
// real embedding (or this repo's own tests) plugs in.
package env

import "github.com/rgchris/boron/value"

// Environment is the capability set the codec needs from its host. An
// embedder that already manages its own heap can implement this interface
// directly instead of using Memory.
type Environment interface {
	// AllocateBuffers reserves n fresh buffer ids with no kind yet assigned
	// (§4.9 step 3: "Allocates buffer-count fresh buffers ... recording
	// their ids"). InitBuffer must be called on each before use.
	AllocateBuffers(n int) []value.BufferID

	// InitBuffer assigns kind and an initial capacity hint to a
	// previously-allocated buffer id.
	InitBuffer(id value.BufferID, kind value.BKind, capacityHint int) error

	// Buffer returns the live buffer for id, or false if id is unknown.
	// The codec mutates the returned buffer directly to fill its payload.
	Buffer(id value.BufferID) (*value.Buffer, bool)

	// InternAtom returns the atom id for name, interning it if new.
	InternAtom(name string) value.AtomID

	// AtomName returns the textual name of an interned atom.
	AtomName(id value.AtomID) (string, bool)

	// InternNames bulk-interns a §4.3 name table (space/NUL-delimited) and
	// returns the resulting atom ids in table order.
	InternNames(table []byte) []value.AtomID

	// SortContext builds a CONTEXT buffer's atom-sorted lookup index after
	// its word-atom table has been populated (§4.9).
	SortContext(id value.BufferID)

	// NewBinary allocates a fresh BINARY buffer seeded with data and
	// returns a cell referencing it at offset 0, unsliced (the "result cell
	// factory" of §6.1, used by Serialize to hand back the encoded bytes).
	NewBinary(data []byte) value.Cell

	// NewBlock returns a BLOCK cell referencing id at offset 0, unsliced —
	// the decoder's final result cell (§4.9: "The final result cell is a
	// BLOCK value referencing buf-id[0] at offset 0 with end = -1").
	NewBlock(id value.BufferID) value.Cell
}
