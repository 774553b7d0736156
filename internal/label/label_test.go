package label

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanNoLabels(t *testing.T) {
	tab, err := Scan(strings.NewReader("+++---"))
	require.NoError(t, err)
	assert.Equal(t, 0, tab.Len())
	_, ok := tab.Current()
	assert.False(t, ok)
}

func TestScanRecordsOffsets(t *testing.T) {
	tab, err := Scan(strings.NewReader("++:--:++"))
	require.NoError(t, err)
	require.Equal(t, 2, tab.Len())
	assert.Equal(t, []int64{2, 5}, tab.Offsets())
}

func TestScanIgnoresLabelsInsideComments(t *testing.T) {
	tab, err := Scan(strings.NewReader("+{:}:+"))
	require.NoError(t, err)
	require.Equal(t, 1, tab.Len())
	assert.Equal(t, []int64{4}, tab.Offsets())
}

func TestScanFloorsUnmatchedCloseBrace(t *testing.T) {
	tab, err := Scan(strings.NewReader("}:+"))
	require.NoError(t, err)
	require.Equal(t, 1, tab.Len())
	assert.Equal(t, []int64{1}, tab.Offsets())
}

func TestTableNavigation(t *testing.T) {
	tab, err := Scan(strings.NewReader(":a:b:c"))
	require.NoError(t, err)
	require.Equal(t, 3, tab.Len())

	pos, ok := tab.Current()
	require.True(t, ok)
	assert.Equal(t, int64(0), pos)

	require.True(t, tab.Next())
	pos, _ = tab.Current()
	assert.Equal(t, int64(2), pos)

	require.True(t, tab.Next())
	assert.False(t, tab.Next(), "Next at the last label should fail")

	require.True(t, tab.Previous())
	require.True(t, tab.First())
	pos, _ = tab.Current()
	assert.Equal(t, int64(0), pos)

	assert.False(t, tab.Previous(), "Previous at the first label should fail")
}
