package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_Used_Binary(t *testing.T) {
	b := &Buffer{Kind: BKindBinary, Bytes: []byte{1, 2, 3}}
	assert.Equal(t, 3, b.Used())
}

func TestBuffer_Used_String(t *testing.T) {
	b := &Buffer{Kind: BKindString, ElemSize: 2, Bytes: make([]byte, 8)}
	assert.Equal(t, 4, b.Used())
}

func TestBuffer_Used_StringZeroElemSize(t *testing.T) {
	b := &Buffer{Kind: BKindString, ElemSize: 0, Bytes: make([]byte, 8)}
	assert.Equal(t, 0, b.Used())
}

func TestBuffer_Used_Block(t *testing.T) {
	b := &Buffer{Kind: BKindBlock, Cells: make([]Cell, 5)}
	assert.Equal(t, 5, b.Used())
}

func TestBuffer_Used_Context(t *testing.T) {
	b := &Buffer{Kind: BKindContext, Slots: make([]Cell, 2)}
	assert.Equal(t, 2, b.Used())
}

func TestNewBlock(t *testing.T) {
	cells := []Cell{{Kind: KindInt, Int: 1}}
	b := NewBlock(BufferID(5), cells)
	assert.Equal(t, BufferID(5), b.ID)
	assert.Equal(t, BKindBlock, b.Kind)
	assert.Equal(t, cells, b.Cells)
}
