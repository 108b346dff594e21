package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

func (e *Editor) handleKey(ev *tcell.EventKey) {
	buf := e.buf
	if e.help.HandleKey(ev) {
		return
	}

	switch ev.Key() {
	case tcell.KeyF1:
		e.help.Toggle()
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		e.quit = true
	case tcell.KeyLeft:
		buf.MoveLeft()
	case tcell.KeyRight:
		buf.MoveRight()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		buf.DeleteBackward()
	case tcell.KeyDelete:
		buf.DeleteForward()
	case tcell.KeyEnter:
		buf.Insert('\n')
	case tcell.KeyTab:
		buf.Insert('\t')
	case tcell.KeyCtrlC:
		e.copyDocument()
	case tcell.KeyCtrlV:
		e.paste()
	case tcell.KeyCtrlL:
		e.clearDocument()
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			e.handleCtrlRune(ev.Rune())
			return
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return
		}
		buf.Insert(ev.Rune())
	}
}

// handleCtrlRune covers terminals that report Ctrl+letter as a rune with
// ModCtrl instead of a control key.
func (e *Editor) handleCtrlRune(r rune) {
	switch r {
	case 'q', 'Q':
		e.quit = true
	case 'c', 'C':
		e.copyDocument()
	case 'v', 'V':
		e.paste()
	case 'l', 'L':
		e.clearDocument()
	}
}

func (e *Editor) copyDocument() {
	text := e.buf.String()
	if !e.clip.Write(text) && e.cfg.SystemClipboard {
		e.logger.Printf("system clipboard unavailable, copied to internal register")
	}
	e.setTemporaryMessage(fmt.Sprintf("Copied %d characters", e.buf.Len()))
}

func (e *Editor) paste() {
	text := e.clip.Read()
	if text == "" {
		e.setTemporaryError("Clipboard is empty")
		return
	}
	e.buf.InsertString(text)
}

func (e *Editor) clearDocument() {
	e.buf.Reset()
	e.setTemporaryMessage("Cleared")
}
