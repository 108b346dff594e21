package editor

import (
	"errors"
	"strings"
)

// ErrUnknownCommand is the only error a command line can produce.
var ErrUnknownCommand = errors.New("invalid command")

type CommandKind int

const (
	CmdType CommandKind = iota
	CmdLeft
	CmdRight
	CmdBackspace
	CmdDelete
	CmdShow
	CmdExit
	CmdHelp
	CmdStatus
	CmdCopy
	CmdPaste
	CmdClear
)

const typePrefix = "TYPE "

var keywords = map[string]CommandKind{
	"LEFT":      CmdLeft,
	"RIGHT":     CmdRight,
	"BACKSPACE": CmdBackspace,
	"DELETE":    CmdDelete,
	"SHOW":      CmdShow,
	"EXIT":      CmdExit,
	"HELP":      CmdHelp,
	"STATUS":    CmdStatus,
	"COPY":      CmdCopy,
	"PASTE":     CmdPaste,
	"CLEAR":     CmdClear,
}

type Command struct {
	Kind    CommandKind
	Payload string // text to insert, CmdType only
}

// ParseCommand maps one input line to a command. Surrounding whitespace is
// ignored and keywords are case-sensitive. The TYPE payload is everything
// after "TYPE ", so interior spaces survive.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if kind, ok := keywords[line]; ok {
		return Command{Kind: kind}, nil
	}
	if strings.HasPrefix(line, typePrefix) {
		return Command{Kind: CmdType, Payload: line[len(typePrefix):]}, nil
	}
	return Command{}, ErrUnknownCommand
}

const helpText = `Commands:
  TYPE <text>  insert text at the cursor
  LEFT         move the cursor left
  RIGHT        move the cursor right
  BACKSPACE    delete the character before the cursor
  DELETE       delete the character after the cursor
  SHOW         print the document with the cursor marker
  STATUS       print cursor offset, column and document length
  COPY         copy the document to the clipboard
  PASTE        insert the clipboard contents at the cursor
  CLEAR        empty the document
  HELP         show this help
  EXIT         end the session`
