package editor

import (
	"gapedit/ui"
)

func (e *Editor) render() {
	screenW, screenH := e.screen.Size()
	if screenW <= 0 || screenH <= 0 {
		return
	}
	theme := e.cfg.GetTheme()

	cursor := e.buf.Cursor()
	line, col := ui.CursorPosition(e.buf.Before(), e.view.TabSize)

	e.view.Theme = theme
	e.view.Lines = e.highlight.Lines(e.buf.String(), e.cfg.Highlight, theme.Foreground)
	e.view.CursorLine = line
	e.view.CursorCol = col
	e.view.Render(e.screen, 0, 0, screenW, screenH-1)

	e.statusBar.Theme = theme
	e.statusBar.Offset = cursor.Offset
	e.statusBar.Column = col
	e.statusBar.Length = e.buf.Len()
	e.statusBar.Language = e.cfg.Highlight
	e.statusBar.Render(e.screen, 0, screenH-1, screenW, 1)

	e.help.Theme = theme
	e.help.Render(e.screen, 0, 0, screenW, screenH-1)

	e.screen.Show()
}
