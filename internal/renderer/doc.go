// Package renderer draws hex editing sessions onto a terminal backend.
//
// A frame is laid out top to bottom as
//
//	tab bar          one row listing open documents
//	hex view         offset column, hex cells, ASCII column
//	status line      file, mode, position, value at cursor
//	message line     last message, or the active prompt
//
// The hex view places every glyph with the same arithmetic the layout
// package uses for hit testing, so a click on a painted cell always maps
// back to that cell.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultTheme())
//	x, y, w, h := r.ViewArea()
//	eng.SetViewport(w, h)
//	r.Render(renderer.Frame{View: eng, Status: status})
package renderer
