package renderer

import "github.com/dshills/hexstorm/internal/renderer/backend"

// Theme holds the styles used to paint a frame.
type Theme struct {
	Offset    backend.Style
	Hex       backend.Style
	ASCII     backend.Style
	Caret     backend.Style // Filled caret in the active column
	Shadow    backend.Style // Outlined caret in the inactive column
	TabBar    backend.Style
	ActiveTab backend.Style
	Status    backend.Style
	Message   backend.Style
	Error     backend.Style
	Prompt    backend.Style
}

// DefaultTheme returns the stock colors: muted red offsets, grey data and a
// reversed caret.
func DefaultTheme() Theme {
	base := backend.DefaultStyle()
	return Theme{
		Offset:    base.WithForeground(backend.RGB(155, 90, 90)),
		Hex:       base.WithForeground(backend.RGB(90, 90, 90)),
		ASCII:     base.WithForeground(backend.RGB(90, 90, 90)),
		Caret:     base.With(backend.AttrReverse),
		Shadow:    base.With(backend.AttrUnderline),
		TabBar:    base.With(backend.AttrDim),
		ActiveTab: base.With(backend.AttrBold),
		Status:    base.With(backend.AttrReverse),
		Message:   base,
		Error:     base.WithForeground(backend.RGB(200, 40, 40)).With(backend.AttrBold),
		Prompt:    base.With(backend.AttrBold),
	}
}
