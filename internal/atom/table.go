// Package atom implements the encoder-side atom map (§4.3): an
// insertion-ordered table of interned symbol names, deduplicated by an
// xxHash64-keyed lookup so repeated interning of the same word stays O(1)
// even with many thousands of distinct symbols in a graph.
package atom

import "github.com/cespare/xxhash/v2"

// Table is an ordered list of atom names in first-reference order. Intern
// returns the wire index of name, appending a new entry if this is the first
// time name has been seen.
type Table struct {
	names []string
	index map[uint64][]int // hash -> candidate positions, collision-chained
}

// New returns an empty atom table.
func New() *Table {
	return &Table{index: make(map[uint64][]int)}
}

// Intern returns the wire index for name, appending it if not already
// present. The returned index is stable for the lifetime of the table.
func (t *Table) Intern(name string) int {
	h := xxhash.Sum64String(name)
	for _, i := range t.index[h] {
		if t.names[i] == name {
			return i
		}
	}
	i := len(t.names)
	t.names = append(t.names, name)
	t.index[h] = append(t.index[h], i)
	return i
}

// Len returns the number of distinct atoms interned so far.
func (t *Table) Len() int { return len(t.names) }

// Names returns the interned names in wire-index order. The caller must not
// mutate the returned slice.
func (t *Table) Names() []string { return t.names }

// Bytes serializes the table per §4.3: each name terminated by a single
// space byte, except the last, which is NUL-terminated. An empty table
// serializes to nothing; the caller is responsible for treating that as
// "atoms-offset = 0" in the header.
func (t *Table) Bytes() []byte {
	if len(t.names) == 0 {
		return nil
	}
	out := make([]byte, 0, 16*len(t.names))
	for i, name := range t.names {
		out = append(out, name...)
		if i == len(t.names)-1 {
			out = append(out, 0)
		} else {
			out = append(out, ' ')
		}
	}
	return out
}

