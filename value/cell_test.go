package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_Sliced(t *testing.T) {
	assert.False(t, Cell{End: -1}.Sliced())
	assert.True(t, Cell{End: 0}.Sliced())
	assert.True(t, Cell{End: 5}.Sliced())
}

func TestIsGlobalContext(t *testing.T) {
	assert.True(t, IsGlobalContext(GlobalThreadBuffer))
	assert.True(t, IsGlobalContext(GlobalEnvBuffer))
	assert.False(t, IsGlobalContext(InvalidBuffer))
	assert.False(t, IsGlobalContext(FirstAllocatableBuffer))
}

func TestBinding_Unbound(t *testing.T) {
	assert.True(t, Binding{Kind: BindUnbound}.Unbound())
	assert.False(t, Binding{Kind: BindThread}.Unbound())
}

func TestNewWord(t *testing.T) {
	c := NewWord(KindWord, AtomID(3))
	assert.Equal(t, KindWord, c.Kind)
	assert.Equal(t, AtomID(3), c.Atom)
	assert.True(t, c.Binding.Unbound())
}

func TestNewSeries(t *testing.T) {
	c := NewSeries(KindBlock, BufferID(7))
	assert.Equal(t, BufferID(7), c.Buf)
	assert.Equal(t, int32(0), c.It)
	assert.Equal(t, int32(-1), c.End)
	assert.False(t, c.Sliced())
}

func TestNewSlice(t *testing.T) {
	c := NewSlice(KindString, BufferID(7), 1, 4)
	assert.Equal(t, int32(1), c.It)
	assert.Equal(t, int32(4), c.End)
	assert.True(t, c.Sliced())
}
