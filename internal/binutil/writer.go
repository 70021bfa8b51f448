package binutil

import (
	"encoding/binary"
	"io"
)

// Writer wraps an io.Writer with position tracking and sticky error
// handling, so a render path can chain writes and check the error once.
type Writer struct {
	w   io.Writer
	off int64
	err error
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int64 {
	return w.off
}

// Err returns the first error encountered by any write, if any.
func (w *Writer) Err() error {
	return w.err
}

// WriteBytes writes raw bytes to the underlying writer.
func (w *Writer) WriteBytes(b []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(b)
	w.off += int64(n)
	w.err = err
}

// WriteString writes a string as bytes to the underlying writer.
func (w *Writer) WriteString(s string) {
	w.WriteBytes([]byte(s))
}

// WriteUint16 writes a big-endian uint16.
func (w *Writer) WriteUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	w.WriteBytes(buf[:])
}
