package value

import "sort"

// Sort builds the CONTEXT buffer's atom-sorted lookup index from its
// slot-ordered atom table (§4.9: "populates the atom->slot map from the
// word-atom table, sorts it"). The slot-ordered Atoms/Slots are left
// untouched; Sort only builds the auxiliary binary-search index FindSlot
// uses. Calling Sort before Atoms is fully populated (e.g. on a partially
// decoded context) produces a lookup index for whatever prefix exists.
func (b *Buffer) Sort() {
	if b.Kind != BKindContext {
		return
	}
	order := make([]int, len(b.Atoms))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return b.Atoms[order[i]] < b.Atoms[order[j]]
	})
	b.lookupAtoms = make([]AtomID, len(order))
	b.lookupSlots = make([]int, len(order))
	for i, slot := range order {
		b.lookupAtoms[i] = b.Atoms[slot]
		b.lookupSlots[i] = slot
	}
}

// FindSlot returns the slot index bound to atom in a CONTEXT buffer, using
// the index built by Sort. It reports false if atom is not present or Sort
// has not been called.
func (b *Buffer) FindSlot(atom AtomID) (int, bool) {
	n := len(b.lookupAtoms)
	i := sort.Search(n, func(i int) bool { return b.lookupAtoms[i] >= atom })
	if i < n && b.lookupAtoms[i] == atom {
		return b.lookupSlots[i], true
	}
	return 0, false
}
