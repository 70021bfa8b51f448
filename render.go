package id3

import (
	"bytes"
	"io"

	"github.com/soundkit/id3/internal/binutil"
	"github.com/soundkit/id3/internal/synchsafe"
)

// Bytes renders the complete output buffer: a fresh tag header, every
// live frame, then the trailing payload remembered at parse time. For
// a Tag that never had a source buffer the trailing payload is empty.
func (t *Tag) Bytes() []byte {
	buf := &bytes.Buffer{}
	t.WriteTo(buf) //nolint:errcheck // bytes.Buffer cannot fail
	return buf.Bytes()
}

// WriteTo renders the tag to w, implementing io.WriterTo.
//
// Frames are written in id first-insertion order, each id's frames in
// their list order, with re-computed synchsafe size fields and zero
// flags. Tags are always written as ID3v2.4.
func (t *Tag) WriteTo(w io.Writer) (int64, error) {
	body := &bytes.Buffer{}
	bw := binutil.NewWriter(body)
	for _, id := range t.order {
		if len(id) != 4 {
			// Not representable in a frame header; skip on write the
			// way the parser skips implausible ids on read.
			continue
		}
		for _, f := range t.frames[id] {
			payload := f.Body()
			size := synchsafe.Encode(uint32(len(payload)))
			bw.WriteString(id)
			bw.WriteBytes(size[:])
			bw.WriteUint16(0) // flags
			bw.WriteBytes(payload)
		}
	}

	sw := binutil.NewWriter(w)
	total := synchsafe.Encode(uint32(body.Len()))
	sw.WriteString(tagSignature)
	sw.WriteBytes([]byte{4, 0, 0}) // v2.4, zero revision, zero flags
	sw.WriteBytes(total[:])
	sw.WriteBytes(body.Bytes())
	sw.WriteBytes(t.trailing)
	return sw.Offset(), sw.Err()
}
