package search

import (
	"bytes"
	"errors"
)

// ErrEmptyNeedle is returned by Validate for a needle with no bytes.
var ErrEmptyNeedle = errors.New("empty search pattern")

// Haystack is the read side of a buffer.
type Haystack interface {
	Bytes() []byte
}

// Validate reports whether needle can ever match.
func Validate(needle []byte) error {
	if len(needle) == 0 {
		return ErrEmptyNeedle
	}
	return nil
}

// FindNext returns the smallest offset >= start where needle occurs.
func FindNext(h Haystack, start int, needle []byte) (int, bool) {
	data := h.Bytes()
	if len(needle) == 0 || start >= len(data) {
		return 0, false
	}
	if start < 0 {
		start = 0
	}
	i := bytes.Index(data[start:], needle)
	if i < 0 {
		return 0, false
	}
	return start + i, true
}

// FindPrevious returns the largest offset < start where needle occurs.
// The match itself may extend past start.
func FindPrevious(h Haystack, start int, needle []byte) (int, bool) {
	data := h.Bytes()
	if len(needle) == 0 || start <= 0 {
		return 0, false
	}

	// A match beginning at start-1 may run up to start-1+len(needle).
	end := start - 1 + len(needle)
	if end > len(data) {
		end = len(data)
	}
	i := bytes.LastIndex(data[:end], needle)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// CountMatches returns the number of possibly overlapping occurrences of needle.
func CountMatches(h Haystack, needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	n := 0
	for off, ok := FindNext(h, 0, needle); ok; off, ok = FindNext(h, off+1, needle) {
		n++
	}
	return n
}
