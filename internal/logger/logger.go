// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps a slog.Logger so it can be extended without touching the call sites.
type Logger struct {
	*slog.Logger
}

// New returns a Logger that writes text records at or above level to stderr.
func New(level slog.Level) *Logger {
	return NewLogger(level, os.Stderr)
}

// NewLogger returns a Logger that writes text records at or above level to output.
func NewLogger(level slog.Level, output io.Writer) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))}
}

// Err returns the attribute used for logging errors.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
