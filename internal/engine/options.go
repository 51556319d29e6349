package engine

import (
	"github.com/dshills/hexstorm/internal/engine/cursor"
	"github.com/dshills/hexstorm/internal/engine/history"
	"github.com/dshills/hexstorm/internal/engine/layout"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = history.DefaultMaxEntries
	DefaultViewportWidth  = 80
	DefaultViewportHeight = 24
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxUndoEntries = n
		}
	}
}

// WithReadOnly creates a read-only engine.
// Edits will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}

// WithMetrics sets the font metrics used for layout.
func WithMetrics(m layout.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithMargins sets the row margins used for layout.
func WithMargins(g layout.Margins) Option {
	return func(e *Engine) {
		e.margins = g
	}
}

// WithViewport sets the initial viewport size.
func WithViewport(width, height int) Option {
	return func(e *Engine) {
		e.width = width
		e.height = height
	}
}

// WithMode sets the initial edit mode.
func WithMode(m cursor.Mode) Option {
	return func(e *Engine) {
		e.initMode = m
	}
}

// WithObserver registers an observer before the engine is returned.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}
