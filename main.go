package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gapedit/clipboardx"
	"gapedit/config"
	"gapedit/editor"
)

// set via ldflags during release builds
var version = "dev"

type options struct {
	configPath string
	screen     bool
	noPrompt   bool
	version    bool
	script     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.version {
		fmt.Printf("gapedit %s\n", version)
		return 0
	}

	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	logger, logCloser, err := editor.OpenLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	editorOpts := []editor.Option{
		editor.WithLogger(logger),
		editor.WithClipboard(clipboardx.New(cfg.SystemClipboard)),
	}
	if opts.noPrompt || opts.script != "" {
		editorOpts = append(editorOpts, editor.WithOverrides(func(c *config.Config) {
			c.ShowPrompt = false
		}))
	}
	if cfg.WatchConfig && opts.configPath != "" {
		w, err := config.Watch(ctx, opts.configPath, logger)
		if err != nil {
			logger.Printf("settings watcher disabled: %v", err)
		} else {
			defer w.Close()
			editorOpts = append(editorOpts, editor.WithConfigUpdates(w.Changes()))
		}
	}

	if opts.screen {
		if err := editor.New(cfg, editorOpts...).Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	var in io.Reader = os.Stdin
	if opts.script != "" {
		f, err := os.Open(opts.script)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: open script: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	err = editor.NewSession(cfg, os.Stdout, editorOpts...).Run(ctx, in)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", config.ConfigPath(), "Path to settings file")
	flag.BoolVar(&opts.screen, "screen", false, "Run the full-screen editor")
	flag.BoolVar(&opts.noPrompt, "no-prompt", false, "Do not print the prompt before each command")
	flag.BoolVar(&opts.version, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gapedit [flags] [script]\n\n")
		fmt.Fprintf(os.Stderr, "Commands: TYPE <text>, LEFT, RIGHT, BACKSPACE, DELETE, SHOW, EXIT\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.script = flag.Arg(0)
	return opts
}
