package cli

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Debug records are kept only in
// verbose mode.
func newLogger(verbose bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// installLogger makes the command logger the process default so the
// store and compiler packages log through it.
func installLogger(verbose bool, w io.Writer) {
	slog.SetDefault(newLogger(verbose, w))
}
