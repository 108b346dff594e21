package ui

import (
	"gapedit/buffer"
	"gapedit/config"
	"gapedit/highlight"

	"github.com/gdamore/tcell/v2"
)

// DocumentView draws highlighted document lines and keeps the terminal
// cursor on the buffer cursor, scrolling as needed.
type DocumentView struct {
	Lines      []highlight.StyledLine
	CursorLine int
	CursorCol  int // display column, tabs expanded
	TabSize    int
	Theme      *config.ColorScheme

	scrollY int
	scrollX int
}

func NewDocumentView() *DocumentView {
	return &DocumentView{TabSize: 4}
}

// CursorPosition converts the text left of the cursor into a line index
// and a display column.
func CursorPosition(before string, tabSize int) (line, col int) {
	return buffer.Position([]rune(before), tabSize)
}

func (d *DocumentView) ensureCursorVisible(width, height int) {
	if d.CursorLine < d.scrollY {
		d.scrollY = d.CursorLine
	}
	if height > 0 && d.CursorLine >= d.scrollY+height {
		d.scrollY = d.CursorLine - height + 1
	}
	if d.CursorCol < d.scrollX {
		d.scrollX = d.CursorCol
	}
	// keep one spare cell so the cursor can sit after the last rune
	if width > 0 && d.CursorCol >= d.scrollX+width {
		d.scrollX = d.CursorCol - width + 1
	}
}

func (d *DocumentView) Render(screen tcell.Screen, x, y, width, height int) {
	theme := d.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}
	bg := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	empty := bg.Foreground(tcell.ColorGray)

	d.ensureCursorVisible(width, height)

	for row := 0; row < height; row++ {
		for cx := x; cx < x+width; cx++ {
			screen.SetContent(cx, y+row, ' ', nil, bg)
		}
		lineIdx := d.scrollY + row
		if lineIdx >= len(d.Lines) {
			screen.SetContent(x, y+row, '~', nil, empty)
			continue
		}

		col := 0
		for _, tok := range d.Lines[lineIdx].Tokens {
			style := tok.Style.Background(theme.Background)
			for _, r := range tok.Text {
				w := buffer.CellWidth(r, col, d.TabSize)
				screenCol := col - d.scrollX
				if screenCol >= 0 && screenCol+w <= width && r != '\t' {
					screen.SetContent(x+screenCol, y+row, r, nil, style)
				}
				col += w
			}
		}
	}

	cx := x + d.CursorCol - d.scrollX
	cy := y + d.CursorLine - d.scrollY
	if cx >= x && cx < x+width && cy >= y && cy < y+height {
		screen.ShowCursor(cx, cy)
	} else {
		screen.HideCursor()
	}
}
