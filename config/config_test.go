package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error for missing config, got %v", err)
	}
	if cfg.Prompt != "> " || cfg.CursorMarker != "|" {
		t.Fatalf("expected default prompt and marker, got %q %q", cfg.Prompt, cfg.CursorMarker)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.CursorMarker = "^"
	cfg.Theme = "nord"
	cfg.Highlight = "go"
	if err := cfg.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".config", "gapedit", "settings.json")); err != nil {
		t.Fatalf("expected settings file under HOME, stat err=%v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.CursorMarker != "^" || got.Theme != "nord" || got.Highlight != "go" {
		t.Fatalf("unexpected loaded config: %+v", got)
	}
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"theme":"dracula"}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("expected dracula theme, got %q", cfg.Theme)
	}
	if !cfg.ShowPrompt || cfg.Prompt != "> " {
		t.Fatalf("expected default prompt settings to survive, got %+v", cfg)
	}
}

func TestLoadRejectsMultiCharMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"cursor_marker":"<>"}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, ErrInvalidMarker) {
		t.Fatalf("expected ErrInvalidMarker, got %v", err)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"theme":`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestGetThemeFallsBackToMonokai(t *testing.T) {
	cfg := Default()
	cfg.Theme = "no-such-theme"
	if got := cfg.GetTheme(); got != Themes["monokai"] {
		t.Fatalf("expected monokai fallback, got %v", got.Name)
	}
	if got := cfg.ChromaStyle(); got != "monokai" {
		t.Fatalf("expected monokai chroma style, got %q", got)
	}
}

func TestWatcherPublishesReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"cursor_marker":"|"}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, nil)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"cursor_marker":"#"}`), 0o644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	select {
	case cfg := <-w.Changes():
		if cfg.CursorMarker != "#" {
			t.Fatalf("expected reloaded marker #, got %q", cfg.CursorMarker)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("expected a reload within 5s")
	}
}

func TestWatcherSkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, nil)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"cursor_marker":"too long"}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	select {
	case cfg := <-w.Changes():
		t.Fatalf("expected invalid config to be skipped, got %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherIgnoresSettingsMovedAway(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"cursor_marker":"#"}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, nil)
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer w.Close()

	if err := os.Rename(path, filepath.Join(dir, "settings.json.bak")); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	select {
	case cfg := <-w.Changes():
		t.Fatalf("expected no reload after rename, got %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte(`{"cursor_marker":"@"}`), 0o644); err != nil {
		t.Fatalf("recreate failed: %v", err)
	}
	select {
	case cfg := <-w.Changes():
		if cfg.CursorMarker != "@" {
			t.Fatalf("expected marker @ after recreate, got %q", cfg.CursorMarker)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("expected a reload after the file was recreated")
	}
}
