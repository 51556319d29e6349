package buffer

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(nil)

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
}

func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("ABC"))
	if err != nil {
		t.Fatalf("NewBufferFromReader failed: %v", err)
	}

	if b.Len() != 3 {
		t.Errorf("expected length 3, got %d", b.Len())
	}
	if !bytes.Equal(b.Bytes(), []byte("ABC")) {
		t.Errorf("expected ABC, got %q", b.Bytes())
	}
}

func TestNewBufferFromReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewBufferFromReader(iotest.ErrReader(boom))
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped read error, got %v", err)
	}
}

func TestBufferSetGet(t *testing.T) {
	b := NewBuffer([]byte{0x00, 0x01, 0x02, 0x03})

	for offset := 0; offset < b.Len(); offset++ {
		for _, v := range []byte{0x00, 0x7F, 0x80, 0xFF} {
			if err := b.Set(offset, v); err != nil {
				t.Fatalf("Set(%d) failed: %v", offset, err)
			}
			got, err := b.Get(offset)
			if err != nil {
				t.Fatalf("Get(%d) failed: %v", offset, err)
			}
			if got != v {
				t.Errorf("Get(%d) = %#x, want %#x", offset, got, v)
			}
		}
	}
}

func TestBufferOutOfRange(t *testing.T) {
	b := NewBuffer([]byte("ABC"))

	tests := []struct {
		name   string
		offset int
	}{
		{"negative", -1},
		{"at length", 3},
		{"past length", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Get(tt.offset); !errors.Is(err, ErrOffsetOutOfRange) {
				t.Errorf("Get: expected ErrOffsetOutOfRange, got %v", err)
			}
			if err := b.Set(tt.offset, 0); !errors.Is(err, ErrOffsetOutOfRange) {
				t.Errorf("Set: expected ErrOffsetOutOfRange, got %v", err)
			}
		})
	}

	if !bytes.Equal(b.Bytes(), []byte("ABC")) {
		t.Errorf("rejected writes must not modify the buffer, got %q", b.Bytes())
	}
}

func TestBufferRevision(t *testing.T) {
	b := NewBuffer([]byte("AB"))
	if b.Revision() != 0 {
		t.Fatalf("expected revision 0, got %d", b.Revision())
	}

	_ = b.Set(1, 'C')
	_ = b.Set(5, 'C')

	if b.Revision() != 1 {
		t.Errorf("expected revision 1 after one successful set, got %d", b.Revision())
	}
}

func TestBufferReadU32LE(t *testing.T) {
	b := NewBuffer([]byte{0x78, 0x56, 0x34, 0x12, 0xFF})

	v, err := b.ReadU32LE(0)
	if err != nil {
		t.Fatalf("ReadU32LE failed: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got %#x", v)
	}

	v, err = b.ReadU32LE(1)
	if err != nil {
		t.Fatalf("ReadU32LE failed: %v", err)
	}
	if v != 0xFF123456 {
		t.Errorf("expected 0xFF123456, got %#x", v)
	}

	if _, err := b.ReadU32LE(2); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange reading past the end, got %v", err)
	}
}

func TestBufferReadI32LE(t *testing.T) {
	b := NewBuffer([]byte{0xFE, 0xFF, 0xFF, 0xFF})

	v, err := b.ReadI32LE(0)
	if err != nil {
		t.Fatalf("ReadI32LE failed: %v", err)
	}
	if v != -2 {
		t.Errorf("expected -2, got %d", v)
	}

	if _, err := b.ReadI32LE(-1); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange for negative offset, got %v", err)
	}
}

func TestBufferSlice(t *testing.T) {
	b := NewBuffer([]byte("hello"))

	s, err := b.Slice(1, 4)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	if string(s) != "ell" {
		t.Errorf("expected ell, got %q", s)
	}

	if _, err := b.Slice(3, 6); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if _, err := b.Slice(4, 2); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestBufferWriteTo(t *testing.T) {
	b := NewBuffer([]byte{0x00, 0xAB, 0xCD})

	var out bytes.Buffer
	n, err := b.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 bytes written, got %d", n)
	}
	if !bytes.Equal(out.Bytes(), []byte{0x00, 0xAB, 0xCD}) {
		t.Errorf("unexpected output %x", out.Bytes())
	}
}
