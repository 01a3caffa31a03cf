package logger

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

type Config struct {
	Writer io.Writer
	Debug  bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs the process logger. A nil Writer discards output.
func Setup(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = io.Discard
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)
	return l
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Reset restores the discarding logger.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
}
