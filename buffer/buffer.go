package buffer

import "strings"

// DefaultMarker is drawn between the two runs by Render.
const DefaultMarker = "|"

// TextBuffer holds a document split at the cursor into two rune stacks.
// before is in document order; after is stored reversed so the rune
// adjacent to the cursor is always the last element of either slice.
type TextBuffer struct {
	before []rune
	after  []rune
}

// NewTextBuffer returns an empty buffer with the cursor at offset 0.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{}
}

// Insert places c immediately left of the cursor.
func (b *TextBuffer) Insert(c rune) {
	b.before = append(b.before, c)
}

// InsertString inserts each rune of s in order, leaving the cursor after
// the last one.
func (b *TextBuffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// MoveLeft moves the cursor one rune left; a no-op at the start.
func (b *TextBuffer) MoveLeft() {
	if len(b.before) == 0 {
		return
	}
	last := len(b.before) - 1
	b.after = append(b.after, b.before[last])
	b.before = b.before[:last]
}

// MoveRight moves the cursor one rune right; a no-op at the end.
func (b *TextBuffer) MoveRight() {
	if len(b.after) == 0 {
		return
	}
	last := len(b.after) - 1
	b.before = append(b.before, b.after[last])
	b.after = b.after[:last]
}

// DeleteBackward removes the rune left of the cursor (backspace).
func (b *TextBuffer) DeleteBackward() {
	if len(b.before) == 0 {
		return
	}
	b.before = b.before[:len(b.before)-1]
}

// DeleteForward removes the rune right of the cursor.
func (b *TextBuffer) DeleteForward() {
	if len(b.after) == 0 {
		return
	}
	b.after = b.after[:len(b.after)-1]
}

// Reset empties the document.
func (b *TextBuffer) Reset() {
	b.before = b.before[:0]
	b.after = b.after[:0]
}

// Render returns the document with DefaultMarker at the cursor.
func (b *TextBuffer) Render() string {
	return b.RenderWith(DefaultMarker)
}

// RenderWith is Render with a caller-chosen marker.
func (b *TextBuffer) RenderWith(marker string) string {
	var sb strings.Builder
	sb.Grow(len(b.before) + len(b.after) + len(marker))
	sb.WriteString(string(b.before))
	sb.WriteString(marker)
	b.writeAfter(&sb)
	return sb.String()
}

// String returns the document text without a cursor marker.
func (b *TextBuffer) String() string {
	var sb strings.Builder
	sb.Grow(len(b.before) + len(b.after))
	sb.WriteString(string(b.before))
	b.writeAfter(&sb)
	return sb.String()
}

// Before returns the text left of the cursor.
func (b *TextBuffer) Before() string {
	return string(b.before)
}

// After returns the text right of the cursor in document order.
func (b *TextBuffer) After() string {
	var sb strings.Builder
	b.writeAfter(&sb)
	return sb.String()
}

func (b *TextBuffer) writeAfter(sb *strings.Builder) {
	for i := len(b.after) - 1; i >= 0; i-- {
		sb.WriteRune(b.after[i])
	}
}

// Len is the number of runes in the document.
func (b *TextBuffer) Len() int {
	return len(b.before) + len(b.after)
}

func (b *TextBuffer) AtStart() bool { return len(b.before) == 0 }
func (b *TextBuffer) AtEnd() bool   { return len(b.after) == 0 }
