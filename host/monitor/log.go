package monitor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Component identifies a subsystem in log records
type Component string

const (
	ComponentSerial   Component = "serial"
	ComponentDecoder  Component = "decoder"
	ComponentFirmware Component = "firmware"
	ComponentRecorder Component = "recorder"
)

var (
	logLevel = new(slog.LevelVar)

	logMutex      sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
)

// SetLogLevel sets the minimum level for every monitor logger
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

// ParseLevel accepts debug, info, warn or error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// SetLogOutput replaces the default logger with one writing to w
func SetLogOutput(w io.Writer, json bool) {
	opts := &slog.HandlerOptions{Level: logLevel}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	defaultLogger = slog.New(h)
}

// Logger returns the default logger tagged with component
func Logger(c Component) *slog.Logger {
	logMutex.RLock()
	defer logMutex.RUnlock()
	return defaultLogger.With("component", string(c))
}
