package vm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boolx-lang/boolx/internal/label"
)

func run(t *testing.T, source string, stdin string) (stdout string, err *Error) {
	t.Helper()
	labels, scanErr := label.Scan(strings.NewReader(source))
	require.NoError(t, scanErr)

	var out bytes.Buffer
	interp := New(bytes.NewReader([]byte(source)), labels,
		WithStdin(strings.NewReader(stdin)),
		WithStdout(&out))

	return out.String(), interp.Run()
}

func TestPrintLetterA(t *testing.T) {
	out, err := run(t, "^+_+_+_+_+_+^]", "")
	require.Nil(t, err)
	assert.Equal(t, "A", out)
}

func TestEchoOneByte(t *testing.T) {
	out, err := run(t, "[]", "Z")
	require.Nil(t, err)
	assert.Equal(t, "Z", out)
}

func TestConditionalSkip(t *testing.T) {
	out, err := run(t, "^?_;]", "")
	require.Nil(t, err)
	assert.Equal(t, []byte{0x00}, []byte(out))
}

func TestNestedComment(t *testing.T) {
	out, err := run(t, "{ {^} ^}]", "")
	require.Nil(t, err)
	assert.Equal(t, []byte{0x00}, []byte(out))
}

func TestGlobalQueueFIFO(t *testing.T) {
	out, err := run(t, "^#>^+^#<&]&]", "")
	require.Nil(t, err)
	assert.Equal(t, []byte{0x01, 0x03}, []byte(out))
}

// TestLabelAndJumpUnderStepLimit covers scenario 5: a label followed by
// a jump back to it loops forever, so the test enforces its own step
// limit rather than letting Run block indefinitely. A stdout writer
// that panics with a sentinel value once enough bytes have been
// observed stops the recursive executor after a bounded number of
// iterations.
func TestLabelAndJumpUnderStepLimit(t *testing.T) {
	const stepLimit = 5

	labels, err := label.Scan(strings.NewReader(":^+^]'"))
	require.NoError(t, err)
	require.Equal(t, 1, labels.Len())

	w := &limitedWriter{limit: stepLimit}
	interp := New(bytes.NewReader([]byte(":^+^]'")), labels, WithStdout(w))

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() { recover() }()
		interp.Run()
	}()
	<-done

	assert.GreaterOrEqual(t, w.count, stepLimit)
}

type stopIteration struct{}

type limitedWriter struct {
	limit int
	count int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	w.count += len(p)
	if w.count >= w.limit {
		panic(stopIteration{})
	}
	return len(p), nil
}

func TestLabelNavigationFailsWithoutLabels(t *testing.T) {
	_, err := run(t, "/", "")
	require.NotNil(t, err)
	assert.Equal(t, ErrLabelCursorOutsideOfBounds, err.Kind)
}

func TestDequeueOnEmptyQueueFails(t *testing.T) {
	_, err := run(t, "&", "")
	require.NotNil(t, err)
	assert.Equal(t, ErrEmptyGlobalStack, err.Kind)
}

func TestDoubleElseIsMisplaced(t *testing.T) {
	_, err := run(t, "^?!!", "")
	require.NotNil(t, err)
	assert.Equal(t, ErrMisplacedElse, err.Kind)
}

func TestJumpWithNoLabelsFails(t *testing.T) {
	_, err := run(t, "@", "")
	require.NotNil(t, err)
	assert.Equal(t, ErrJumpButNoLabel, err.Kind)
}

func TestPreviousCellAtFirstIsNoop(t *testing.T) {
	out, err := run(t, "<^]", "")
	require.Nil(t, err)
	assert.Equal(t, []byte{0x01}, []byte(out))
}

func TestPreviousBitAtSentinelIsNoop(t *testing.T) {
	out, err := run(t, "-^]", "")
	require.Nil(t, err)
	assert.Equal(t, []byte{0x01}, []byte(out))
}
