package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioSequence(t *testing.T) {
	b := NewTextBuffer()

	b.Insert('a')
	b.Insert('b')
	b.Insert('c')
	require.Equal(t, "abc|", b.Render())

	b.MoveLeft()
	b.MoveLeft()
	require.Equal(t, "a|bc", b.Render())

	b.DeleteForward()
	require.Equal(t, "a|c", b.Render())

	b.MoveRight()
	b.DeleteBackward()
	require.Equal(t, "a|", b.Render())
}

func TestBoundaryOpsOnEmptyBuffer(t *testing.T) {
	b := NewTextBuffer()
	b.MoveLeft()
	b.MoveRight()
	b.DeleteBackward()
	b.DeleteForward()
	b.DeleteForward()
	b.MoveLeft()

	assert.Equal(t, "|", b.Render())
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.AtStart())
	assert.True(t, b.AtEnd())
}

func TestMoveLeftAtStartIsNoOp(t *testing.T) {
	b := NewTextBuffer()
	b.InsertString("xy")
	b.MoveLeft()
	b.MoveLeft()
	before := b.Render()

	b.MoveLeft()
	assert.Equal(t, before, b.Render())
	assert.Equal(t, "|xy", b.Render())
}

func TestMoveRightAtEndIsNoOp(t *testing.T) {
	b := NewTextBuffer()
	b.InsertString("xy")
	before := b.Render()

	b.MoveRight()
	assert.Equal(t, before, b.Render())
}

func TestInsertThenBackspaceRestoresState(t *testing.T) {
	b := NewTextBuffer()
	b.InsertString("hello")
	b.MoveLeft()
	b.MoveLeft()
	prev := b.Render()
	prevCursor := b.Cursor()

	b.Insert('Z')
	require.Equal(t, "helZ|lo", b.Render())
	b.DeleteBackward()

	assert.Equal(t, prev, b.Render())
	assert.Equal(t, prevCursor, b.Cursor())
}

func TestInsertStringSplitsIntoRunes(t *testing.T) {
	b := NewTextBuffer()
	b.InsertString("héllo")
	assert.Equal(t, 5, b.Len())

	b.MoveLeft()
	b.MoveLeft()
	b.MoveLeft()
	b.MoveLeft()
	assert.Equal(t, "h|éllo", b.Render())
	b.DeleteForward()
	assert.Equal(t, "h|llo", b.Render())
}

func TestRenderWithMarker(t *testing.T) {
	b := NewTextBuffer()
	b.InsertString("ab")
	b.MoveLeft()

	assert.Equal(t, "a▌b", b.RenderWith("▌"))
	assert.Equal(t, "ab", b.String())
	assert.Equal(t, "a", b.Before())
	assert.Equal(t, "b", b.After())
}

func TestReset(t *testing.T) {
	b := NewTextBuffer()
	b.InsertString("abc")
	b.MoveLeft()
	b.Reset()

	assert.Equal(t, "|", b.Render())
	b.Insert('q')
	assert.Equal(t, "q|", b.Render())
}

func TestCursorColumnCountsWideRunes(t *testing.T) {
	b := NewTextBuffer()
	b.InsertString("a世b")
	b.MoveLeft()

	c := b.Cursor()
	assert.Equal(t, 2, c.Offset)
	assert.Equal(t, 3, c.Column)
}

func TestCursorColumnRestartsAfterNewlineAndExpandsTabs(t *testing.T) {
	b := NewTextBuffer()
	b.InsertString("first line\n\tab")

	c := b.Cursor()
	assert.Equal(t, 14, c.Offset)
	assert.Equal(t, 1, c.Line)
	assert.Equal(t, DefaultTabSize+2, c.Column)

	b.InsertString("\n")
	c = b.Cursor()
	assert.Equal(t, 2, c.Line)
	assert.Equal(t, 0, c.Column)
}

func TestPositionTabStops(t *testing.T) {
	cases := []struct {
		text      string
		line, col int
	}{
		{"", 0, 0},
		{"ab\t", 0, 4},
		{"abcd\t", 0, 8},
		{"x\n\t\t", 1, 8},
		{"世\t", 0, 4},
	}
	for _, tc := range cases {
		line, col := Position([]rune(tc.text), 4)
		assert.Equal(t, tc.line, line, tc.text)
		assert.Equal(t, tc.col, col, tc.text)
	}
}

// A fixed pseudo-random walk over every operation, checked against a
// plain string model of the document.
func TestOperationsMatchStringModel(t *testing.T) {
	b := NewTextBuffer()
	var model []rune
	pos := 0

	seed := uint32(7)
	next := func() uint32 {
		seed = seed*1664525 + 1013904223
		return seed >> 16
	}

	for i := 0; i < 2000; i++ {
		switch next() % 5 {
		case 0:
			r := rune('a' + next()%26)
			b.Insert(r)
			model = append(model[:pos], append([]rune{r}, model[pos:]...)...)
			pos++
		case 1:
			b.MoveLeft()
			if pos > 0 {
				pos--
			}
		case 2:
			b.MoveRight()
			if pos < len(model) {
				pos++
			}
		case 3:
			b.DeleteBackward()
			if pos > 0 {
				model = append(model[:pos-1], model[pos:]...)
				pos--
			}
		case 4:
			b.DeleteForward()
			if pos < len(model) {
				model = append(model[:pos], model[pos+1:]...)
			}
		}

		want := string(model[:pos]) + "|" + string(model[pos:])
		if got := b.Render(); got != want {
			t.Fatalf("step %d: expected %q, got %q", i, want, got)
		}
		if b.Len() != len(model) {
			t.Fatalf("step %d: expected length %d, got %d", i, len(model), b.Len())
		}
		if got := strings.Replace(b.Render(), "|", "", 1); got != b.String() {
			t.Fatalf("step %d: render without marker %q differs from text %q", i, got, b.String())
		}
	}
}
