package highlight

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

type Token struct {
	Text  string
	Style tcell.Style
}

type StyledLine struct {
	Tokens []Token
}

type Highlighter struct {
	cache map[string][]StyledLine
}

func New() *Highlighter {
	return &Highlighter{
		cache: make(map[string][]StyledLine),
	}
}

// Reset drops cached results, e.g. after the theme changed.
func (h *Highlighter) Reset() {
	h.cache = make(map[string][]StyledLine)
}

// tokenize lexes text with lang and trims whatever the lexer appended past
// the end of the input (several lexers force a trailing newline).
func tokenize(text, lang string) []chroma.Token {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iter, err := lexer.Tokenise(nil, text)
	if err != nil {
		return []chroma.Token{{Type: chroma.Text, Value: text}}
	}

	remaining := utf8.RuneCountInString(text)
	var out []chroma.Token
	for _, tok := range iter.Tokens() {
		if remaining == 0 {
			break
		}
		n := utf8.RuneCountInString(tok.Value)
		if n > remaining {
			tok.Value = string([]rune(tok.Value)[:remaining])
			n = remaining
		}
		out = append(out, tok)
		remaining -= n
	}
	return out
}

// Lines returns text split into lines of styled tokens for the screen view.
func (h *Highlighter) Lines(text, lang string, fg tcell.Color) []StyledLine {
	key := fmt.Sprintf("%s:%d:%x", lang, fg, sha256.Sum256([]byte(text)))
	if cached, ok := h.cache[key]; ok {
		return cached
	}

	lines := []StyledLine{{}}
	for _, tok := range tokenize(text, lang) {
		style := tokenStyle(tok.Type, fg)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, StyledLine{})
			}
			if part != "" {
				cur := &lines[len(lines)-1]
				cur.Tokens = append(cur.Tokens, Token{Text: part, Style: style})
			}
		}
	}

	h.cache[key] = lines
	return lines
}

// ANSI renders text for a terminal with marker spliced in at the rune
// offset cursor. The marker is emitted as a GenericStrong token so the
// chroma style decides how it stands out.
func ANSI(text string, cursor int, marker, lang, style string) (string, error) {
	tokens := spliceMarker(tokenize(text, lang), cursor, marker)

	formatter := formatters.Get("terminal256")
	var sb strings.Builder
	if err := formatter.Format(&sb, styles.Get(style), chroma.Literator(tokens...)); err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return sb.String(), nil
}

func spliceMarker(tokens []chroma.Token, cursor int, marker string) []chroma.Token {
	mark := chroma.Token{Type: chroma.GenericStrong, Value: marker}
	out := make([]chroma.Token, 0, len(tokens)+2)
	offset := 0
	placed := false
	for _, tok := range tokens {
		n := utf8.RuneCountInString(tok.Value)
		if !placed && cursor < offset+n {
			split := cursor - offset
			runes := []rune(tok.Value)
			if split > 0 {
				out = append(out, chroma.Token{Type: tok.Type, Value: string(runes[:split])})
			}
			out = append(out, mark)
			tok.Value = string(runes[split:])
			placed = true
		}
		out = append(out, tok)
		offset += n
	}
	if !placed {
		out = append(out, mark)
	}
	return out
}

func tokenStyle(t chroma.TokenType, fg tcell.Color) tcell.Style {
	base := tcell.StyleDefault

	switch {
	case t.InCategory(chroma.Keyword):
		return base.Foreground(tcell.ColorBlue).Bold(true)

	case t == chroma.NameBuiltin || t == chroma.NameBuiltinPseudo:
		return base.Foreground(tcell.ColorBlue)

	case t.InSubCategory(chroma.LiteralString):
		return base.Foreground(tcell.ColorGreen)

	case t.InCategory(chroma.Comment):
		return base.Foreground(tcell.ColorGray).Italic(true)

	case t.InSubCategory(chroma.LiteralNumber):
		return base.Foreground(tcell.ColorDarkCyan)

	case t == chroma.NameFunction || t == chroma.NameFunctionMagic:
		return base.Foreground(tcell.ColorYellow)

	case t == chroma.NameClass || t == chroma.NameException || t == chroma.NameDecorator:
		return base.Foreground(tcell.ColorFuchsia)

	default:
		return base.Foreground(fg)
	}
}
