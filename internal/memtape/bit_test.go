package memtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSequenceSelectedOnEmpty(t *testing.T) {
	b := NewBitSequence()
	_, ok := b.Selected()
	assert.False(t, ok)
}

func TestBitSequenceSetAndNavigate(t *testing.T) {
	b := NewBitSequence()
	b.SetOne()
	v, ok := b.Selected()
	require.True(t, ok)
	assert.True(t, v)

	b.NextBit()
	b.SetZero()
	v, ok = b.Selected()
	require.True(t, ok)
	assert.False(t, v)

	b.PreviousBit()
	v, ok = b.Selected()
	require.True(t, ok)
	assert.True(t, v)
}

func TestBitSequenceSetNullTruncates(t *testing.T) {
	b := NewBitSequence()
	b.SetOne()
	b.NextBit()
	b.SetOne()
	b.FirstBit()
	b.SetNull()
	_, ok := b.Selected()
	assert.False(t, ok)
}

func TestBitSequenceClear(t *testing.T) {
	b := NewBitSequence()
	b.SetOne()
	b.NextBit()
	b.SetOne()
	b.Clear()
	values, cursor := b.Snapshot()
	assert.Empty(t, values)
	assert.Equal(t, 0, cursor)
}

func TestBitSequenceWriteThenReadByteRoundTrips(t *testing.T) {
	for n := 0; n < 256; n++ {
		b := NewBitSequence()
		b.WriteByte(byte(n))
		assert.Equal(t, byte(n), b.ReadByte(), "round trip of %d", n)
	}
}

func TestBitSequenceWriteByteZeroLeavesSelectedBitFalseNotNull(t *testing.T) {
	b := NewBitSequence()
	b.WriteByte(0)
	v, ok := b.Selected()
	require.True(t, ok, "writing 0x00 must emit one explicit false bit, not leave the selected bit null")
	assert.False(t, v)
}

func TestBitSequenceWriteByteLeavesCursorAtSentinel(t *testing.T) {
	b := NewBitSequence()
	b.NextBit()
	b.NextBit()
	b.WriteByte(5)
	_, cursor := b.Snapshot()
	assert.Equal(t, 0, cursor)
}

func TestBitSequenceReadByteIgnoresBitsBeyond127(t *testing.T) {
	b := NewBitSequence()
	for i := 0; i < 200; i++ {
		b.SetOne()
		b.NextBit()
	}
	assert.NotPanics(t, func() { b.ReadByte() })
}

func TestBitSequenceSnapshotCursorPositions(t *testing.T) {
	b := NewBitSequence()
	b.SetOne()
	b.NextBit()
	b.SetZero()

	values, cursor := b.Snapshot()
	assert.Equal(t, []bool{true, false}, values)
	assert.Equal(t, 1, cursor)
}
