package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/critter-catcher/internal/core"
	"github.com/vovakirdan/critter-catcher/internal/registry"
	"github.com/vovakirdan/critter-catcher/internal/storage"
)

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newLogger builds the root logger. Terminal games own the screen, so
// they log to a file; the server logs to stderr.
// The returned close function is never nil.
func newLogger(toStderr bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if !toStderr {
		w = io.Discard
		if flagLogFile != "" {
			path, err := expandHome(flagLogFile)
			if err != nil {
				return nil, closeFn, err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, closeFn, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
			}
			w = f
			closeFn = func() { _ = f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger for commands that cannot start without one.
func mustLogger(toStderr bool) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(toStderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}

// openStore opens the score database. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// requireGame exits when id is not a registered game.
func requireGame(id string) {
	if registry.Exists(id) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'catcher list' to see available games.")
	os.Exit(1)
}
