package ui

import (
	"fmt"

	"gapedit/config"

	"github.com/gdamore/tcell/v2"
)

type StatusBar struct {
	Mode     string
	Offset   int
	Column   int
	Length   int
	Language string // empty shows "Plain"
	Message  string // replaces the left side while set
	IsError  bool
	Theme    *config.ColorScheme
}

func NewStatusBar() *StatusBar {
	return &StatusBar{Mode: "EDIT"}
}

// RightText is the position summary drawn at the right edge.
func (s *StatusBar) RightText() string {
	lang := s.Language
	if lang == "" {
		lang = "Plain"
	}
	return fmt.Sprintf("Off %d, Col %d | %d chars | %s ", s.Offset, s.Column+1, s.Length, lang)
}

func (s *StatusBar) Render(screen tcell.Screen, x, y, width, height int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}

	style := tcell.StyleDefault.Background(theme.StatusBarBg).Foreground(theme.StatusBarFg)
	modeStyle := tcell.StyleDefault.Background(theme.StatusBarModeBg).Foreground(tcell.ColorWhite).Bold(true)

	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	col := x
	put := func(text string, st tcell.Style) {
		for _, ch := range text {
			if col < x+width {
				screen.SetContent(col, y, ch, nil, st)
				col++
			}
		}
	}

	put(" "+s.Mode+" ", modeStyle)
	put(" ", style)

	if s.Message != "" {
		msgStyle := style
		if s.IsError {
			msgStyle = style.Foreground(theme.ErrorFg)
		}
		put(s.Message, msgStyle)
	}

	right := []rune(s.RightText())
	rightStart := x + width - len(right)
	if rightStart > col+1 {
		for i, ch := range right {
			screen.SetContent(rightStart+i, y, ch, nil, style)
		}
	}
}
