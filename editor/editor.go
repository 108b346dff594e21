package editor

import (
	"context"
	"fmt"
	"time"

	"gapedit/buffer"
	"gapedit/config"
	"gapedit/highlight"
	"gapedit/ui"

	"github.com/gdamore/tcell/v2"
)

const messageTimeout = 3 * time.Second

// Editor is the full-screen front end. It drives the same TextBuffer
// operations as Session, from key events instead of command lines.
type Editor struct {
	screen tcell.Screen
	buf    *buffer.TextBuffer
	cfg    *config.Config
	deps

	highlight *highlight.Highlighter
	view      *ui.DocumentView
	statusBar *ui.StatusBar
	help      *ui.HelpOverlay

	quit bool

	statusMessageTime time.Time
}

// ConfigEvent carries reloaded settings into the screen event loop.
type ConfigEvent struct {
	tcell.EventTime
	Config *config.Config
}

func New(cfg *config.Config, opts ...Option) *Editor {
	e := &Editor{
		buf:       buffer.NewTextBuffer(),
		deps:      newDeps(cfg, opts),
		highlight: highlight.New(),
		view:      ui.NewDocumentView(),
		statusBar: ui.NewStatusBar(),
		help:      ui.NewHelpOverlay(),
	}
	e.cfg = e.override(cfg)
	return e
}

func (e *Editor) Buffer() *buffer.TextBuffer { return e.buf }

// Run opens the terminal screen and processes events until the user quits
// or ctx is done.
func (e *Editor) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	return e.RunOnScreen(ctx, screen)
}

// RunOnScreen is Run on a caller-provided screen, which it initialises
// and finalises.
func (e *Editor) RunOnScreen(ctx context.Context, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnablePaste()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	e.screen = screen

	stop := make(chan struct{})
	defer close(stop)
	go e.forward(ctx, stop)

	e.logger.Printf("screen session started")
	for !e.quit {
		e.clearExpiredMessage()
		e.render()

		switch ev := screen.PollEvent().(type) {
		case nil:
			e.quit = true
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			e.handleKey(ev)
		case *ConfigEvent:
			e.applyConfig(ev.Config)
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				e.quit = true
			}
		}
	}
	e.logger.Printf("screen session ended")

	screen.Clear()
	screen.Fini()
	return nil
}

// forward posts config reloads and cancellation into the event loop so
// that all state changes happen on the loop goroutine.
func (e *Editor) forward(ctx context.Context, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			e.screen.PostEvent(tcell.NewEventInterrupt(nil))
			return
		case cfg, ok := <-e.configs:
			if !ok {
				return
			}
			ev := &ConfigEvent{Config: cfg}
			ev.SetEventNow()
			e.screen.PostEvent(ev)
		}
	}
}

func (e *Editor) applyConfig(cfg *config.Config) {
	e.cfg = e.override(cfg)
	e.highlight.Reset()
	e.setTemporaryMessage("Settings reloaded")
	e.logger.Printf("config reloaded (theme %s)", cfg.Theme)
}

func (e *Editor) setTemporaryMessage(msg string) {
	e.statusBar.Message = msg
	e.statusBar.IsError = false
	e.statusMessageTime = time.Now()
}

func (e *Editor) setTemporaryError(msg string) {
	e.statusBar.Message = msg
	e.statusBar.IsError = true
	e.statusMessageTime = time.Now()
}

func (e *Editor) clearExpiredMessage() {
	if e.statusBar.Message != "" && time.Since(e.statusMessageTime) > messageTimeout {
		e.statusBar.Message = ""
		e.statusBar.IsError = false
	}
}
