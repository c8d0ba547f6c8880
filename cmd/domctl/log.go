package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/signadot/go-dom/debug"
)

var (
	theLog = newLog(os.Stderr)
)

// newLog returns the command logger on w. It shares its level with the
// debug package so that -v keeps DOM_DEBUG_* output.
func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: debug.Level(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}
