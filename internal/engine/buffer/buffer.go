package buffer

import (
	"errors"
	"fmt"
	"io"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer is a fixed-length, mutable byte sequence.
type Buffer struct {
	data     []byte
	revision uint64
}

// NewBuffer creates a buffer that takes ownership of data.
// The caller must not modify data afterwards.
func NewBuffer(data []byte) *Buffer {
	if data == nil {
		data = []byte{}
	}
	return &Buffer{data: data}
}

// NewBufferFromReader reads r to EOF and creates a buffer from its contents.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}
	return NewBuffer(data), nil
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Revision returns a counter incremented by every successful Set.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// Get returns the byte at offset.
func (b *Buffer) Get(offset int) (byte, error) {
	if offset < 0 || offset >= len(b.data) {
		return 0, fmt.Errorf("get byte %d of %d: %w", offset, len(b.data), ErrOffsetOutOfRange)
	}
	return b.data[offset], nil
}

// Set replaces the byte at offset.
func (b *Buffer) Set(offset int, value byte) error {
	if offset < 0 || offset >= len(b.data) {
		return fmt.Errorf("set byte %d of %d: %w", offset, len(b.data), ErrOffsetOutOfRange)
	}
	b.data[offset] = value
	b.revision++
	return nil
}

// ReadU32LE reads four bytes starting at offset, least significant byte first.
func (b *Buffer) ReadU32LE(offset int) (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		c, err := b.Get(offset + i)
		if err != nil {
			return 0, err
		}
		v |= uint32(c) << (8 * i)
	}
	return v, nil
}

// ReadI32LE reads a little-endian two's complement int32 starting at offset.
func (b *Buffer) ReadI32LE(offset int) (int32, error) {
	v, err := b.ReadU32LE(offset)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// Slice returns the bytes in [start, end).
// The returned slice aliases the buffer and must not be modified.
func (b *Buffer) Slice(start, end int) ([]byte, error) {
	if start < 0 || end > len(b.data) {
		return nil, fmt.Errorf("slice [%d,%d) of %d: %w", start, end, len(b.data), ErrOffsetOutOfRange)
	}
	if start > end {
		return nil, fmt.Errorf("slice [%d,%d): %w", start, end, ErrRangeInvalid)
	}
	return b.data[start:end], nil
}

// Bytes returns the full contents.
// The returned slice aliases the buffer and must not be modified.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// WriteTo writes the whole buffer to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data)
	return int64(n), err
}
