package editor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"

	"gapedit/buffer"
	"gapedit/config"
	"gapedit/highlight"
)

// Session drives a TextBuffer from line commands. It owns the buffer; all
// buffer access happens on the goroutine calling Run or Execute.
type Session struct {
	buf *buffer.TextBuffer
	cfg *config.Config
	out io.Writer
	deps
}

func NewSession(cfg *config.Config, out io.Writer, opts ...Option) *Session {
	s := &Session{
		buf:  buffer.NewTextBuffer(),
		out:  out,
		deps: newDeps(cfg, opts),
	}
	s.cfg = s.override(cfg)
	return s
}

func (s *Session) Buffer() *buffer.TextBuffer { return s.buf }

func (s *Session) Config() *config.Config { return s.cfg }

// Execute runs one input line and reports whether the session continues.
func (s *Session) Execute(line string) bool {
	cmd, err := ParseCommand(line)
	if err != nil {
		s.logger.Printf("unknown command %q", line)
		fmt.Fprintln(s.out, "Invalid command")
		return true
	}
	return s.apply(cmd)
}

func (s *Session) apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdType:
		s.buf.InsertString(cmd.Payload)
	case CmdLeft:
		s.buf.MoveLeft()
	case CmdRight:
		s.buf.MoveRight()
	case CmdBackspace:
		s.buf.DeleteBackward()
	case CmdDelete:
		s.buf.DeleteForward()
	case CmdShow:
		fmt.Fprintln(s.out, s.show())
	case CmdExit:
		return false
	case CmdHelp:
		fmt.Fprintln(s.out, helpText)
	case CmdStatus:
		c := s.buf.Cursor()
		fmt.Fprintf(s.out, "offset=%d column=%d length=%d\n", c.Offset, c.Column, s.buf.Len())
	case CmdCopy:
		if !s.clip.Write(s.buf.String()) && s.cfg.SystemClipboard {
			s.logger.Printf("system clipboard unavailable, copied to internal register")
		}
	case CmdPaste:
		s.buf.InsertString(s.clip.Read())
	case CmdClear:
		s.buf.Reset()
	}
	return true
}

func (s *Session) show() string {
	if s.cfg.Color {
		out, err := highlight.ANSI(s.buf.String(), s.buf.Cursor().Offset, s.cfg.CursorMarker, s.cfg.Highlight, s.cfg.ChromaStyle())
		if err == nil {
			return out
		}
		s.logger.Printf("highlight: %v", err)
	}
	return s.buf.RenderWith(s.cfg.CursorMarker)
}

func (s *Session) applyConfig(cfg *config.Config) {
	s.cfg = s.override(cfg)
	s.logger.Printf("config reloaded (marker %q, theme %s)", cfg.CursorMarker, cfg.Theme)
}

// Run reads commands from in until EXIT, end of input, or ctx is done.
// End of input ends the session like EXIT.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.logger.Printf("session started")
	defer s.logger.Printf("session ended")

	for {
		if s.cfg.ShowPrompt {
			fmt.Fprint(s.out, s.cfg.Prompt)
		}
		line, ok, err := s.next(ctx, lines)
		if err != nil {
			return err
		}
		if !ok {
			if err := <-readErr; err != nil {
				return fmt.Errorf("read commands: %w", err)
			}
			return nil
		}
		if !s.Execute(line) {
			return nil
		}
	}
}

// next waits for the next input line, applying settings reloads while it
// waits.
func (s *Session) next(ctx context.Context, lines <-chan string) (string, bool, error) {
	for {
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case cfg, ok := <-s.configs:
			if !ok {
				s.configs = nil
				continue
			}
			s.applyConfig(cfg)
		case line, ok := <-lines:
			return line, ok, nil
		}
	}
}
