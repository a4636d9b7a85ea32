package main

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger logs as text on a terminal and as JSON otherwise.
func NewLogger(out *os.File, debug bool) *slog.Logger {
	opts := slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	if term.IsTerminal(int(out.Fd())) {
		return slog.New(slog.NewTextHandler(out, &opts))
	}
	return slog.New(slog.NewJSONHandler(out, &opts))
}
