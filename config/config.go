package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var ErrInvalidMarker = errors.New("cursor_marker must be exactly one character")

type Config struct {
	Prompt          string `json:"prompt"`
	ShowPrompt      bool   `json:"show_prompt"`
	CursorMarker    string `json:"cursor_marker"`
	Theme           string `json:"theme"`
	Highlight       string `json:"highlight"` // chroma lexer name, empty disables
	Color           bool   `json:"color"`     // ANSI colours in SHOW output
	SystemClipboard bool   `json:"system_clipboard"`
	LogFile         string `json:"log_file"` // "-" disables logging
	WatchConfig     bool   `json:"watch_config"`
}

type ColorScheme struct {
	Name            string
	Background      tcell.Color
	Foreground      tcell.Color
	StatusBarBg     tcell.Color
	StatusBarFg     tcell.Color
	StatusBarModeBg tcell.Color
	ErrorFg         tcell.Color
}

var Themes = map[string]*ColorScheme{
	"dark": {
		Name:            "Dark",
		Background:      tcell.ColorBlack,
		Foreground:      tcell.ColorWhite,
		StatusBarBg:     tcell.ColorDarkBlue,
		StatusBarFg:     tcell.ColorWhite,
		StatusBarModeBg: tcell.ColorBlue,
		ErrorFg:         tcell.ColorRed,
	},
	"light": {
		Name:            "Light",
		Background:      tcell.ColorWhite,
		Foreground:      tcell.ColorBlack,
		StatusBarBg:     tcell.ColorLightBlue,
		StatusBarFg:     tcell.ColorBlack,
		StatusBarModeBg: tcell.ColorBlue,
		ErrorFg:         tcell.ColorDarkRed,
	},
	"monokai": {
		Name:            "Monokai",
		Background:      tcell.NewRGBColor(39, 40, 34),
		Foreground:      tcell.NewRGBColor(248, 248, 242),
		StatusBarBg:     tcell.NewRGBColor(73, 72, 62),
		StatusBarFg:     tcell.NewRGBColor(248, 248, 242),
		StatusBarModeBg: tcell.NewRGBColor(102, 217, 239),
		ErrorFg:         tcell.NewRGBColor(249, 38, 114),
	},
	"nord": {
		Name:            "Nord",
		Background:      tcell.NewRGBColor(46, 52, 64),
		Foreground:      tcell.NewRGBColor(236, 239, 244),
		StatusBarBg:     tcell.NewRGBColor(67, 76, 94),
		StatusBarFg:     tcell.NewRGBColor(236, 239, 244),
		StatusBarModeBg: tcell.NewRGBColor(136, 192, 208),
		ErrorFg:         tcell.NewRGBColor(191, 97, 106),
	},
	"dracula": {
		Name:            "Dracula",
		Background:      tcell.NewRGBColor(40, 42, 54),
		Foreground:      tcell.NewRGBColor(248, 248, 242),
		StatusBarBg:     tcell.NewRGBColor(68, 71, 90),
		StatusBarFg:     tcell.NewRGBColor(248, 248, 242),
		StatusBarModeBg: tcell.NewRGBColor(189, 147, 249),
		ErrorFg:         tcell.NewRGBColor(255, 85, 85),
	},
}

// chromaStyles maps theme keys to the chroma style used for coloured SHOW
// output. Themes missing here use the chroma fallback style.
var chromaStyles = map[string]string{
	"dark":    "native",
	"light":   "github",
	"monokai": "monokai",
	"nord":    "nord",
	"dracula": "dracula",
}

func Default() *Config {
	return &Config{
		Prompt:          "> ",
		ShowPrompt:      true,
		CursorMarker:    "|",
		Theme:           "monokai",
		SystemClipboard: true,
		LogFile:         defaultLogPath(),
		WatchConfig:     true,
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["monokai"]
	}
	return theme
}

// ChromaStyle names the chroma style matching the configured theme.
func (c *Config) ChromaStyle() string {
	if name, ok := chromaStyles[c.Theme]; ok {
		return name
	}
	return chromaStyles["monokai"]
}

// Validate checks fields the rest of the program relies on.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.CursorMarker) != 1 {
		return fmt.Errorf("%w: got %q", ErrInvalidMarker, c.CursorMarker)
	}
	return nil
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gapedit", "settings.json")
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "-"
	}
	return filepath.Join(home, ".local", "share", "gapedit", "gapedit.log")
}

func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads settings from path on top of Default. A missing file is
// not an error.
func LoadFrom(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
