package id3

import (
	"bytes"
	"fmt"

	"github.com/soundkit/id3/internal/binutil"
	"github.com/soundkit/id3/internal/synchsafe"
)

// Tag wire layout constants.
const (
	tagSignature    = "ID3"
	headerSize      = 10
	frameHeaderSize = 10
)

// Parse decodes a tag from an in-memory buffer.
//
// Parse never fails: a buffer without the "ID3" signature yields an
// empty Tag that remembers the whole buffer as trailing payload, and
// structurally broken frames stop or skip the frame loop with a
// Warning. This leniency is deliberate; a corrupt tag should still
// give back whatever frames decode cleanly.
func Parse(data []byte, opts ...Option) *Tag {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	t := New()
	t.parseBuffer(data)

	if options.ignoreWarnings {
		t.Warnings = nil
	}
	return t
}

func (t *Tag) parseBuffer(data []byte) {
	if len(data) < headerSize || string(data[:3]) != tagSignature {
		// Tag-less input: everything is trailing payload and a fresh
		// tag gets spliced in front of it on save.
		t.trailing = bytes.Clone(data)
		return
	}
	t.Version = data[3]
	t.Revision = data[4]
	t.Flags = data[5]

	declared := int(synchsafe.Decode(data[6:10]))
	end := headerSize + declared
	if end > len(data) {
		// The declared size overruns the buffer; clamp rather than
		// refuse, some writers get this wrong.
		t.warn("header", 6, fmt.Sprintf("declared tag size %d exceeds buffer", declared))
		end = len(data)
	}

	r := binutil.NewReader(data[headerSize:end])
	for r.Remaining() >= frameHeaderSize {
		hdr, _ := r.Peek(frameHeaderSize)
		id := hdr[:4]
		if !validFrameID(id) {
			// Padding or garbage. Terminal condition, not an error.
			break
		}
		size := int(synchsafe.Decode(hdr[4:8]))
		if size > r.Remaining()-frameHeaderSize {
			t.warn("frame", int64(headerSize+r.Offset()),
				fmt.Sprintf("frame %s: declared size %d overruns tag", id, size))
			break
		}
		r.Skip(frameHeaderSize) // id, size and the 2 ignored flag bytes
		body, _ := r.ReadBytes(size)

		f, err := parseFrameBody(string(id), body)
		if err != nil {
			// One bad frame must not poison the rest of the tag.
			t.warn("frame", int64(headerSize+r.Offset()-size-frameHeaderSize), err.Error())
			continue
		}
		t.Add(f)
	}

	// Everything from the point the loop stopped at is trailing
	// payload, preserved byte for byte across a read-modify-write.
	t.trailing = bytes.Clone(data[headerSize+r.Offset():])
}

// validFrameID reports whether the 4 bytes form a plausible frame
// identifier: ASCII uppercase letters and digits only.
func validFrameID(id []byte) bool {
	for _, c := range id {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
