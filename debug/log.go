package debug

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	SetLogger(NewLogger(os.Stderr))
}

// Level is slog.LevelDebug when any DOM_DEBUG_* flag is set and
// slog.LevelInfo otherwise. Loggers passed to SetLogger should enable it.
func Level() slog.Level {
	if enabled() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger returns a text logger on w without timestamps, at Level().
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Logger returns the logger used for debug and error output.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger replaces the logger returned by Logger. A nil l restores
// slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger.Store(l)
}
