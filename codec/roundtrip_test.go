package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgchris/boron/env"
	"github.com/rgchris/boron/errs"
	"github.com/rgchris/boron/value"
)

func TestSerialize_EmptyBlock(t *testing.T) {
	host := env.New()
	id := host.AllocBlock(value.BKindBlock, 0)
	root := host.NewBlock(id)

	bin, err := Serialize(host, root)
	require.NoError(t, err)

	buf, ok := host.Buffer(bin.Buf)
	require.True(t, ok)

	want := []byte{
		'B', 'O', 'R', '1',
		0, 0, 0, 0, // atoms-offset
		0, 0, 0, 1, // buffer-count
		byte(value.BKindBlock),
		0, // varint used=0
	}
	assert.Equal(t, want, buf.Bytes)

	decoded, err := Unserialize(host, bin)
	require.NoError(t, err)
	assert.Equal(t, value.KindBlock, decoded.Kind)
	dbuf, ok := host.Buffer(decoded.Buf)
	require.True(t, ok)
	assert.Empty(t, dbuf.Cells)
}

func TestRoundTrip_Ints(t *testing.T) {
	host := env.New()
	id := host.AllocBlock(value.BKindBlock, 3)
	buf, _ := host.Buffer(id)
	buf.Cells = []value.Cell{
		{Kind: value.KindInt, Int: 1},
		{Kind: value.KindInt, Int: -1},
		{Kind: value.KindInt, Int: 0x7F},
	}
	root := host.NewBlock(id)

	bin, err := Serialize(host, root)
	require.NoError(t, err)

	decoded, err := Unserialize(host, bin)
	require.NoError(t, err)

	dbuf, ok := host.Buffer(decoded.Buf)
	require.True(t, ok)
	require.Len(t, dbuf.Cells, 3)
	assert.Equal(t, int32(1), dbuf.Cells[0].Int)
	assert.Equal(t, int32(-1), dbuf.Cells[1].Int)
	assert.Equal(t, int32(0x7F), dbuf.Cells[2].Int)
}

func TestRoundTrip_BindingPreservedOnNonGlobalContext(t *testing.T) {
	host := env.New()
	ctxID := host.AllocBlock(value.BKindContext, 1)
	ctxBuf, _ := host.Buffer(ctxID)
	atomA := host.InternAtom("a")
	ctxBuf.Atoms = []value.AtomID{atomA}
	ctxBuf.Slots = []value.Cell{{Kind: value.KindInt, Int: 1}}
	host.SortContext(ctxID)

	rootID := host.AllocBlock(value.BKindBlock, 2)
	rootBuf, _ := host.Buffer(rootID)
	rootBuf.Cells = []value.Cell{
		{Kind: value.KindContext, Buf: ctxID},
		{Kind: value.KindWord, Atom: atomA, Binding: value.Binding{Kind: value.BindThread, Ctx: ctxID, Index: 0}},
	}
	root := host.NewBlock(rootID)

	bin, err := Serialize(host, root)
	require.NoError(t, err)

	decoded, err := Unserialize(host, bin)
	require.NoError(t, err)

	dbuf, ok := host.Buffer(decoded.Buf)
	require.True(t, ok)
	require.Len(t, dbuf.Cells, 2)

	ctxCell := dbuf.Cells[0]
	wordCell := dbuf.Cells[1]
	require.Equal(t, value.KindContext, ctxCell.Kind)
	require.Equal(t, value.KindWord, wordCell.Kind)

	assert.Equal(t, ctxCell.Buf, wordCell.Binding.Ctx, "word rebinds to the same decoded context")
	assert.Equal(t, uint16(0), wordCell.Binding.Index)

	name, ok := host.AtomName(wordCell.Atom)
	require.True(t, ok)
	assert.Equal(t, "a", name)

	decodedCtx, ok := host.Buffer(ctxCell.Buf)
	require.True(t, ok)
	assert.Equal(t, int32(1), decodedCtx.Slots[0].Int)
}

func TestRoundTrip_GlobalContextBindingDecodesUnbound(t *testing.T) {
	host := env.New()
	atomA := host.InternAtom("a")

	rootID := host.AllocBlock(value.BKindBlock, 1)
	rootBuf, _ := host.Buffer(rootID)
	rootBuf.Cells = []value.Cell{
		{Kind: value.KindWord, Atom: atomA, Binding: value.Binding{Kind: value.BindThread, Ctx: value.GlobalThreadBuffer, Index: 3}},
	}
	root := host.NewBlock(rootID)

	bin, err := Serialize(host, root)
	require.NoError(t, err)

	decoded, err := Unserialize(host, bin)
	require.NoError(t, err)

	dbuf, ok := host.Buffer(decoded.Buf)
	require.True(t, ok)
	assert.True(t, dbuf.Cells[0].Binding.Unbound())
}

func TestRoundTrip_SlicedStringSharedBuffer(t *testing.T) {
	host := env.New()
	strID := host.AllocBlock(value.BKindString, 0)
	strBuf, _ := host.Buffer(strID)
	strBuf.Form = byte(value.FormLatin1)
	strBuf.ElemSize = 1
	strBuf.Bytes = []byte("hello")

	rootID := host.AllocBlock(value.BKindBlock, 2)
	rootBuf, _ := host.Buffer(rootID)
	rootBuf.Cells = []value.Cell{
		value.NewSlice(value.KindString, strID, 1, 4),
		value.NewSlice(value.KindString, strID, 1, 4),
	}
	root := host.NewBlock(rootID)

	bin, err := Serialize(host, root)
	require.NoError(t, err)

	decoded, err := Unserialize(host, bin)
	require.NoError(t, err)

	dbuf, ok := host.Buffer(decoded.Buf)
	require.True(t, ok)
	require.Len(t, dbuf.Cells, 2)

	c1, c2 := dbuf.Cells[0], dbuf.Cells[1]
	assert.Equal(t, c1.Buf, c2.Buf, "both cells share one decoded buffer")
	assert.Equal(t, int32(1), c1.It)
	assert.Equal(t, int32(4), c1.End)
	assert.Equal(t, int32(1), c2.It)
	assert.Equal(t, int32(4), c2.End)

	sbuf, ok := host.Buffer(c1.Buf)
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), sbuf.Bytes)
}

func TestRoundTrip_CyclicBlock(t *testing.T) {
	host := env.New()
	innerID := host.AllocBlock(value.BKindBlock, 1)
	innerBuf, _ := host.Buffer(innerID)
	innerBuf.Cells = []value.Cell{value.NewSeries(value.KindBlock, innerID)}

	rootID := host.AllocBlock(value.BKindBlock, 2)
	rootBuf, _ := host.Buffer(rootID)
	rootBuf.Cells = []value.Cell{
		value.NewSeries(value.KindBlock, innerID),
		value.NewSeries(value.KindBlock, innerID),
	}
	root := host.NewBlock(rootID)

	bin, err := Serialize(host, root)
	require.NoError(t, err)

	decoded, err := Unserialize(host, bin)
	require.NoError(t, err)

	dbuf, ok := host.Buffer(decoded.Buf)
	require.True(t, ok)
	require.Len(t, dbuf.Cells, 2)
	assert.Equal(t, dbuf.Cells[0].Buf, dbuf.Cells[1].Buf)

	inner, ok := host.Buffer(dbuf.Cells[0].Buf)
	require.True(t, ok)
	require.Len(t, inner.Cells, 1)
	assert.Equal(t, dbuf.Cells[0].Buf, inner.Cells[0].Buf, "the buffer contains a reference to itself")
}

func TestRoundTrip_VectorBuffer(t *testing.T) {
	host := env.New()
	vecID := host.AllocBlock(value.BKindVector, 0)
	vecBuf, _ := host.Buffer(vecID)
	vecBuf.Form = byte(value.FormI32)
	vecBuf.ElemSize = 4
	vecBuf.Bytes = []byte{0, 0, 0, 1, 0, 0, 0, 2}

	rootID := host.AllocBlock(value.BKindBlock, 1)
	rootBuf, _ := host.Buffer(rootID)
	rootBuf.Cells = []value.Cell{value.NewSeries(value.KindVector, vecID)}
	root := host.NewBlock(rootID)

	bin, err := Serialize(host, root)
	require.NoError(t, err)

	decoded, err := Unserialize(host, bin)
	require.NoError(t, err)

	dbuf, _ := host.Buffer(decoded.Buf)
	vbuf, ok := host.Buffer(dbuf.Cells[0].Buf)
	require.True(t, ok)
	assert.Equal(t, byte(value.FormI32), vbuf.Form)
	assert.Equal(t, vecBuf.Bytes, vbuf.Bytes)
}

func TestSerialize_TypeError_NotBlock(t *testing.T) {
	host := env.New()
	_, err := Serialize(host, value.Cell{Kind: value.KindInt})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTypeError)
}

func TestUnserialize_TypeError_NotBinary(t *testing.T) {
	host := env.New()
	_, err := Unserialize(host, value.Cell{Kind: value.KindBlock})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrTypeError)
}

func TestUnserialize_BadMagic(t *testing.T) {
	host := env.New()
	bin := host.NewBinary([]byte("NOTBOR1STUFFHERE"))
	_, err := Unserialize(host, bin)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrScriptError)
}

func TestUnserialize_Truncated(t *testing.T) {
	host := env.New()
	id := host.AllocBlock(value.BKindBlock, 3)
	buf, _ := host.Buffer(id)
	buf.Cells = []value.Cell{
		{Kind: value.KindInt, Int: 1},
		{Kind: value.KindInt, Int: -1},
		{Kind: value.KindInt, Int: 0x7F},
	}
	root := host.NewBlock(id)

	bin, err := Serialize(host, root)
	require.NoError(t, err)
	full, ok := host.Buffer(bin.Buf)
	require.True(t, ok)

	for n := 0; n < len(full.Bytes); n++ {
		truncated := host.NewBinary(append([]byte(nil), full.Bytes[:n]...))
		_, err := Unserialize(host, truncated)
		assert.Error(t, err, "truncation to %d bytes should fail", n)
		assert.ErrorIs(t, err, errs.ErrScriptError)
	}
}

func TestUnserialize_InvalidRangeMode(t *testing.T) {
	host := env.New()
	id := host.AllocBlock(value.BKindString, 0)
	strBuf, _ := host.Buffer(id)
	strBuf.Form = byte(value.FormLatin1)
	strBuf.ElemSize = 1
	strBuf.Bytes = []byte("hi")

	rootID := host.AllocBlock(value.BKindBlock, 1)
	rootBuf, _ := host.Buffer(rootID)
	rootBuf.Cells = []value.Cell{value.NewSeries(value.KindString, id)}
	root := host.NewBlock(rootID)

	bin, err := Serialize(host, root)
	require.NoError(t, err)
	buf, _ := host.Buffer(bin.Buf)

	// Layout: 12-byte header, root buffer's BKind byte, varint used=1,
	// the series cell's tag byte, its buf-index varint (1 byte, index 1),
	// then its range-mode byte. Corrupt that byte to 3 (invalid).
	modeOffset := HeaderSize + 1 /*BKind*/ + 1 /*used=1*/ + 1 /*tag*/ + 1 /*buf-index*/
	corrupted := append([]byte(nil), buf.Bytes...)
	require.Greater(t, len(corrupted), modeOffset)
	corrupted[modeOffset] = 3
	corruptBin := host.NewBinary(corrupted)

	_, err = Unserialize(host, corruptBin)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrScriptError)
}

func TestUnserialize_RandomBytes(t *testing.T) {
	host := env.New()
	bin := host.NewBinary([]byte{0xDE, 0xAD, 0xBE, 0xEF, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	_, err := Unserialize(host, bin)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrScriptError)
}

func TestSerialize_UnsupportedBufferKindFails(t *testing.T) {
	host := env.New()
	rootID := host.AllocBlock(value.BKindBlock, 0)
	root := host.NewBlock(rootID)

	ids := host.AllocateBuffers(1)
	require.NoError(t, host.InitBuffer(ids[0], value.BKind(99), 0))

	rootBuf, _ := host.Buffer(rootID)
	rootBuf.Cells = []value.Cell{value.NewSeries(value.KindBinary, ids[0])}

	_, err := Serialize(host, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrScriptError)
}
