package memtape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellTapeLazyExtension(t *testing.T) {
	tape := NewCellTape()
	first := tape.Current()

	tape.NextCell()
	second := tape.Current()
	assert.NotSame(t, first, second)

	tape.PreviousCell()
	assert.Same(t, first, tape.Current())

	tape.NextCell()
	assert.Same(t, second, tape.Current(), "re-extending should reuse the same cell")
}

func TestCellTapePreviousCellNoopAtFirst(t *testing.T) {
	tape := NewCellTape()
	first := tape.Current()
	tape.PreviousCell()
	assert.Same(t, first, tape.Current())
}

func TestCellTapeFirstCellResets(t *testing.T) {
	tape := NewCellTape()
	first := tape.Current()
	tape.NextCell()
	tape.NextCell()
	tape.FirstCell()
	assert.Same(t, first, tape.Current())
}

func TestCellTapeCellsDepthLimit(t *testing.T) {
	tape := NewCellTape()
	for i := 0; i < 5; i++ {
		tape.NextCell()
	}
	cells := tape.Cells(3)
	assert.Len(t, cells, 3)
}

func TestCellIndependentBitSequences(t *testing.T) {
	tape := NewCellTape()
	tape.Current().SetOne()
	tape.NextCell()
	_, ok := tape.Current().Selected()
	assert.False(t, ok, "a freshly extended cell must start empty")
}
