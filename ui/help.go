package ui

import (
	"gapedit/config"

	"github.com/gdamore/tcell/v2"
)

type keyBinding struct {
	category string
	key      string
	desc     string
}

var keyBindings = []keyBinding{
	{"EDITING", "", ""},
	{"", "Type", "Insert at cursor"},
	{"", "Backspace", "Delete before cursor"},
	{"", "Delete", "Delete after cursor"},
	{"", "Ctrl+L", "Clear document"},
	{"", "", ""},
	{"CURSOR", "", ""},
	{"", "Left / Right", "Move one character"},
	{"", "", ""},
	{"CLIPBOARD", "", ""},
	{"", "Ctrl+C", "Copy document"},
	{"", "Ctrl+V", "Paste"},
	{"", "", ""},
	{"", "F1", "Toggle help"},
	{"", "Esc / Ctrl+Q", "Quit"},
}

// HelpOverlay is the key summary drawn over the document while open.
type HelpOverlay struct {
	Visible bool
	Theme   *config.ColorScheme
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

func (h *HelpOverlay) Toggle() { h.Visible = !h.Visible }

// HandleKey consumes every key while the overlay is open. Esc and F1
// close it.
func (h *HelpOverlay) HandleKey(ev *tcell.EventKey) bool {
	if !h.Visible {
		return false
	}
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyF1 {
		h.Visible = false
	}
	return true
}

func (h *HelpOverlay) Render(screen tcell.Screen, x, y, width, height int) {
	if !h.Visible {
		return
	}
	theme := h.Theme
	if theme == nil {
		theme = config.Themes["monokai"]
	}

	bgStyle := tcell.StyleDefault.Background(theme.StatusBarBg).Foreground(theme.StatusBarFg)
	titleStyle := tcell.StyleDefault.Background(theme.StatusBarModeBg).Foreground(tcell.ColorWhite).Bold(true)
	categoryStyle := bgStyle.Bold(true)
	keyStyle := bgStyle.Foreground(tcell.ColorYellow)

	dialogW := 44
	dialogH := len(keyBindings) + 4
	if dialogW > width-2 {
		dialogW = width - 2
	}
	if dialogH > height-2 {
		dialogH = height - 2
	}
	if dialogW < 4 || dialogH < 3 {
		return
	}
	dialogX := x + (width-dialogW)/2
	dialogY := y + (height-dialogH)/2

	for dy := 0; dy < dialogH; dy++ {
		for dx := 0; dx < dialogW; dx++ {
			screen.SetContent(dialogX+dx, dialogY+dy, ' ', nil, bgStyle)
		}
	}
	for dx := 0; dx < dialogW; dx++ {
		screen.SetContent(dialogX+dx, dialogY, '─', nil, titleStyle)
		screen.SetContent(dialogX+dx, dialogY+dialogH-1, '─', nil, bgStyle)
	}

	put := func(col, row int, text string, st tcell.Style) {
		for _, ch := range text {
			if col >= dialogX+dialogW-1 {
				return
			}
			screen.SetContent(col, row, ch, nil, st)
			col++
		}
	}

	title := " Keys "
	put(dialogX+(dialogW-len(title))/2, dialogY, title, titleStyle)

	row := dialogY + 2
	for _, kb := range keyBindings {
		if row >= dialogY+dialogH-1 {
			break
		}
		switch {
		case kb.category != "":
			put(dialogX+2, row, kb.category, categoryStyle)
		case kb.key != "":
			put(dialogX+4, row, kb.key, keyStyle)
			put(dialogX+20, row, kb.desc, bgStyle)
		}
		row++
	}
}
