package app

import (
	"github.com/dshills/hexstorm/internal/engine/search"
	"github.com/dshills/hexstorm/internal/renderer"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptOpen
	promptSaveAs
	promptFindHex
	promptFindText
)

// prompt is the single-line input shown on the message line.
type prompt struct {
	kind  promptKind
	input []rune

	// history holds entries Up and Down step through, newest first.
	// recall is the selected entry, or -1 while editing draft.
	history []string
	recall  int
	draft   []rune
}

func (p *prompt) active() bool {
	return p.kind != promptNone
}

func (p *prompt) open(kind promptKind, initial string, history []string) {
	p.kind = kind
	p.input = []rune(initial)
	p.history = history
	p.recall = -1
	p.draft = nil
}

func (p *prompt) close() {
	*p = prompt{}
}

func (p *prompt) insert(r rune) {
	p.input = append(p.input, r)
	p.recall = -1
}

func (p *prompt) backspace() {
	if n := len(p.input); n > 0 {
		p.input = p.input[:n-1]
	}
	p.recall = -1
}

// older replaces the input with the next older history entry.
func (p *prompt) older() {
	if p.recall+1 >= len(p.history) {
		return
	}
	if p.recall == -1 {
		p.draft = p.input
	}
	p.recall++
	p.input = []rune(p.history[p.recall])
}

// newer steps back toward the input as it was before recalling.
func (p *prompt) newer() {
	switch {
	case p.recall < 0:
		return
	case p.recall == 0:
		p.recall = -1
		p.input = p.draft
	default:
		p.recall--
		p.input = []rune(p.history[p.recall])
	}
}

// takesPath reports whether the input is a file path.
func (p *prompt) takesPath() bool {
	return p.kind == promptOpen || p.kind == promptSaveAs
}

func (p *prompt) text() string {
	return string(p.input)
}

func (p *prompt) label() string {
	switch p.kind {
	case promptOpen:
		return "Open"
	case promptSaveAs:
		return "Save as"
	case promptFindHex:
		return "Find hex"
	case promptFindText:
		return "Find text"
	}
	return ""
}

func (p *prompt) view() renderer.Prompt {
	return renderer.Prompt{Label: p.label(), Input: p.text()}
}

// needle converts the find input to search bytes.
func (p *prompt) needle() []byte {
	if p.kind == promptFindHex {
		return search.ParseHexNeedle(p.text())
	}
	return search.ParseTextNeedle(p.text())
}
