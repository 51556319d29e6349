// Package buffer provides the byte buffer that backs a hex editing session.
//
// A Buffer owns one contiguous []byte. Its length is fixed when it is
// created; edits replace bytes in place and never grow or shrink it.
//
// Basic usage:
//
//	buf := buffer.NewBuffer([]byte("ABC"))
//
//	// Replace a byte
//	_ = buf.Set(0, 0x51) // "QBC"
//
//	// Read it back
//	b, _ := buf.Get(0) // 0x51
//
//	// Little-endian integer reads
//	v, err := buf.ReadU32LE(0)
//	// err == buffer.ErrOffsetOutOfRange, only three bytes are available
//
// Bounds:
//
// Every indexed access is checked. An offset outside [0, Len()) returns
// ErrOffsetOutOfRange instead of truncating or panicking; callers that
// keep their cursor clamped never see it.
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. It is owned by exactly one editing
// session and accessed from that session's goroutine only.
package buffer
