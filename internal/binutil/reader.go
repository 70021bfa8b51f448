// Package binutil provides bounds-checked binary reading and writing
// primitives for in-memory tag buffers.
package binutil

// Reader is a sequential cursor over an in-memory buffer with automatic
// offset tracking. Every read is bounds-checked; a failed read reports
// ok=false instead of panicking, which lets lenient parsers treat short
// buffers as a stop condition rather than an error.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Peek returns the next n bytes without advancing the cursor.
// The returned slice aliases the underlying buffer.
func (r *Reader) Peek(n int) ([]byte, bool) {
	if n < 0 || r.Remaining() < n {
		return nil, false
	}
	return r.buf[r.off : r.off+n], true
}

// ReadBytes returns the next n bytes and advances the cursor.
// The returned slice aliases the underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, bool) {
	b, ok := r.Peek(n)
	if !ok {
		return nil, false
	}
	r.off += n
	return b, true
}

// ReadByte returns the next byte and advances the cursor.
func (r *Reader) ReadByte() (byte, bool) {
	b, ok := r.ReadBytes(1)
	if !ok {
		return 0, false
	}
	return b[0], true
}

// Skip advances the cursor by n bytes, clamped to the end of the buffer.
func (r *Reader) Skip(n int) {
	if n > r.Remaining() {
		n = r.Remaining()
	}
	r.off += n
}

// Rest returns all unread bytes and advances the cursor to the end.
func (r *Reader) Rest() []byte {
	b := r.buf[r.off:]
	r.off = len(r.buf)
	return b
}
