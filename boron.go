// Package boron implements the BOR1 value-graph codec: a compact, portable
// binary format for a root collection of heterogeneous values, including
// deeply nested collections, shared sub-buffers, interned symbols, named
// contexts, and word-to-context bindings.
//
// # Core Features
//
//   - Deterministic, single-pass encoding of a BLOCK and everything it
//     transitively reaches through buffer and atom references
//   - Identity-preserving round trip: two cells that reference the same
//     buffer before encoding reference the same buffer after decoding,
//     including self-referential (cyclic) graphs
//   - Positional cursors and slice bounds on series values survive the trip
//   - Word-to-context bindings are preserved, except bindings into the two
//     reserved global contexts, which decode as unbound by design
//
// # Basic Usage
//
//	host := env.New()
//	root := host.AllocBlock(value.BKindBlock, 2)
//	buf, _ := host.Buffer(root)
//	buf.Cells = []value.Cell{
//	    {Kind: value.KindInt, Int: 1},
//	    {Kind: value.KindInt, Int: -1},
//	}
//
//	bin, err := boron.Serialize(host, host.NewBlock(root))
//	// ...
//	block, err := boron.Unserialize(host, bin)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around package codec,
// which implements the wire format itself. Package value defines the
// wire-independent cell/buffer data model, package env defines and
// implements the Host Value Environment the codec consumes, and package
// wire implements the low-level integer/byte-order codecs.
package boron

import (
	"github.com/rgchris/boron/codec"
	"github.com/rgchris/boron/env"
	"github.com/rgchris/boron/value"
)

// Serialize encodes block into a BOR1 binary (§6.2). It fails with a
// TypeError (see package errs) if block is not a BLOCK cell.
func Serialize(host env.Environment, block value.Cell) (value.Cell, error) {
	return codec.Serialize(host, block)
}

// Unserialize decodes bin into a BLOCK cell (§6.2). It fails with a
// TypeError if bin is not a BINARY cell, or a ScriptError if bin's bytes are
// not a well-formed BOR1 stream.
func Unserialize(host env.Environment, bin value.Cell) (value.Cell, error) {
	return codec.Unserialize(host, bin)
}
