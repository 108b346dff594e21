package buffer

import "github.com/mattn/go-runewidth"

// DefaultTabSize is the tab stop width used by Cursor.
const DefaultTabSize = 4

// Cursor describes where the insertion point sits. Offset counts runes
// from the start of the document. Line is zero-based; Column is the
// display column within that line, with wide runes taking two cells and
// tabs expanded to the next tab stop.
type Cursor struct {
	Offset, Line, Column int
}

func (b *TextBuffer) Cursor() Cursor {
	line, col := Position(b.before, DefaultTabSize)
	return Cursor{Offset: len(b.before), Line: line, Column: col}
}

// Position returns the line index and display column reached after
// drawing text from the start of a document.
func Position(text []rune, tabSize int) (line, col int) {
	start := 0
	for i, r := range text {
		if r == '\n' {
			line++
			start = i + 1
		}
	}
	for _, r := range text[start:] {
		col += CellWidth(r, col, tabSize)
	}
	return line, col
}

// CellWidth is the number of cells r occupies when drawn at column col.
func CellWidth(r rune, col, tabSize int) int {
	if r == '\t' {
		if tabSize <= 0 {
			tabSize = DefaultTabSize
		}
		return tabSize - (col % tabSize)
	}
	return runewidth.RuneWidth(r)
}
