// Package logging sets up structured logging for hexstorm.
//
// Records are written as JSON through log/slog to a rotating file. Recent
// warnings and errors are also kept in memory so the status line can show
// them without reading the file back.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Entry is a captured warning or error.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// ringBuffer is a fixed-size circular buffer for log entries.
type ringBuffer struct {
	mu      sync.RWMutex
	entries []Entry
	size    int
	head    int
	count   int

	warnCount  int
	errorCount int
}

func newRingBuffer(size int) *ringBuffer {
	if size < 1 {
		size = 1
	}
	return &ringBuffer{
		entries: make([]Entry, size),
		size:    size,
	}
}

func (rb *ringBuffer) add(e Entry) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.entries[rb.head] = e
	rb.head = (rb.head + 1) % rb.size
	if rb.count < rb.size {
		rb.count++
	}

	if e.Level >= slog.LevelError {
		rb.errorCount++
	} else if e.Level >= slog.LevelWarn {
		rb.warnCount++
	}
}

func (rb *ringBuffer) all() []Entry {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	result := make([]Entry, rb.count)
	for i := 0; i < rb.count; i++ {
		idx := (rb.head - rb.count + i + rb.size) % rb.size
		result[i] = rb.entries[idx]
	}
	return result
}

func (rb *ringBuffer) last() (Entry, bool) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.count == 0 {
		return Entry{}, false
	}
	return rb.entries[(rb.head-1+rb.size)%rb.size], true
}

func (rb *ringBuffer) counts() (warn, err int) {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.warnCount, rb.errorCount
}

// captureHandler wraps another handler and records warnings and errors.
type captureHandler struct {
	inner  slog.Handler
	buffer *ringBuffer
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		h.buffer.add(Entry{
			Time:    r.Time,
			Level:   r.Level,
			Message: r.Message,
		})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{inner: h.inner.WithAttrs(attrs), buffer: h.buffer}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{inner: h.inner.WithGroup(name), buffer: h.buffer}
}

// ParseLevel parses debug, info, warn or error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Config configures a Logger.
type Config struct {
	Level      slog.Level
	Path       string // Log file; DefaultPath() when empty
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Capture    int // Number of warnings/errors kept in memory

	// Output overrides the rotating file, mainly for tests.
	Output io.Writer
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:      slog.LevelInfo,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
		Capture:    100,
	}
}

// DefaultPath returns the log file location under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "hexstorm", "hexstorm.log")
}

// Logger owns the slog logger and its rotating writer.
type Logger struct {
	*slog.Logger

	path   string
	file   *lumberjack.Logger
	buffer *ringBuffer
}

// New creates a Logger from cfg.
func New(cfg Config) (*Logger, error) {
	l := &Logger{buffer: newRingBuffer(cfg.Capture)}

	out := cfg.Output
	if out == nil {
		path := cfg.Path
		if path == "" {
			path = DefaultPath()
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		l.path = path
		l.file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out = l.file
	}

	handler := &captureHandler{
		inner:  slog.NewJSONHandler(out, &slog.HandlerOptions{Level: cfg.Level}),
		buffer: l.buffer,
	}
	l.Logger = slog.New(handler)
	return l, nil
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	l, _ := New(Config{Level: slog.LevelError + 1, Output: io.Discard, Capture: 1})
	return l
}

// Path returns the log file path, or "" when writing to a custom output.
func (l *Logger) Path() string {
	return l.path
}

// Component returns a logger tagged with a component name.
func (l *Logger) Component(name string) *slog.Logger {
	return l.Logger.With("component", name)
}

// Recent returns the captured warnings and errors, oldest first.
func (l *Logger) Recent() []Entry {
	return l.buffer.all()
}

// Last returns the most recent captured warning or error.
func (l *Logger) Last() (Entry, bool) {
	return l.buffer.last()
}

// Counts returns the number of warnings and errors logged so far.
func (l *Logger) Counts() (warn, err int) {
	return l.buffer.counts()
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
