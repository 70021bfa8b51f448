package id3

import (
	"bytes"
)

// Well-known frame identifiers. Identifiers are data, not structure:
// any 4-character id may be stored in a Tag, these constants just name
// the ones most callers touch.
const (
	FrameTitle   = "TIT2"
	FrameArtist  = "TPE1"
	FrameAlbum   = "TALB"
	FrameTrack   = "TRCK"
	FrameDisc    = "TPOS"
	FrameYear    = "TDRC"
	FrameComment = "COMM"
	FramePicture = "APIC"
)

// Frame is a single typed record inside a tag.
//
// The set of implementations is closed: TextFrame, CommentFrame,
// PictureFrame, and OpaqueFrame for everything with an unrecognized
// identifier. Switch over the concrete type to inspect a frame.
type Frame interface {
	// ID returns the 4-character frame identifier.
	ID() string
	// Body renders the frame payload, excluding the 10-byte frame
	// header written by the container.
	Body() []byte
}

// TextFrame is a multi-value text frame (TIT2, TPE1, TALB, ...).
//
// Values keep their order; multi-value frames join on the null
// separator appropriate to the encoding.
type TextFrame struct {
	FrameID  string
	Encoding Encoding
	Values   []string
}

// Text returns a TextFrame with the given id and UTF-8 values.
func Text(id string, values ...string) TextFrame {
	return TextFrame{FrameID: id, Encoding: EncodingUTF8, Values: values}
}

func (f TextFrame) ID() string { return f.FrameID }

func (f TextFrame) Body() []byte {
	body := []byte{byte(f.Encoding)}
	return append(body, encodeText(f.Values, f.Encoding)...)
}

func parseTextFrame(id string, body []byte) (Frame, error) {
	if len(body) < 1 {
		return nil, &FrameError{FrameID: id, Reason: "empty text frame body"}
	}
	enc := normalizeEncoding(body[0])
	return TextFrame{
		FrameID:  id,
		Encoding: enc,
		Values:   decodeText(body[1:], enc),
	}, nil
}

// CommentFrame is a COMM frame: a free-text comment with a 3-byte
// language code and a short description.
//
// Language is stored verbatim; it is not validated against ISO-639.
type CommentFrame struct {
	Encoding    Encoding
	Language    [3]byte
	Description string
	Text        string
}

// Comment returns a UTF-8 CommentFrame. lang is padded or truncated to
// exactly 3 bytes.
func Comment(lang, description, text string) CommentFrame {
	return CommentFrame{
		Encoding:    EncodingUTF8,
		Language:    LanguageCode(lang),
		Description: description,
		Text:        text,
	}
}

// LanguageCode pads or truncates s to the fixed 3-byte language field,
// space-padded on the right.
func LanguageCode(s string) [3]byte {
	code := [3]byte{' ', ' ', ' '}
	copy(code[:], s)
	return code
}

func (f CommentFrame) ID() string { return FrameComment }

func (f CommentFrame) Body() []byte {
	body := []byte{byte(f.Encoding)}
	body = append(body, f.Language[:]...)
	body = append(body, encodeString(f.Description, f.Encoding)...)
	body = append(body, f.Encoding.terminator()...)
	body = append(body, encodeString(f.Text, f.Encoding)...)
	return body
}

func parseCommentFrame(body []byte) (Frame, error) {
	if len(body) < 4 {
		return nil, &FrameError{FrameID: FrameComment, Reason: "comment body shorter than 4 bytes"}
	}
	enc := normalizeEncoding(body[0])
	var lang [3]byte
	copy(lang[:], body[1:4])

	rest := body[4:]
	frame := CommentFrame{Encoding: enc, Language: lang}
	i := indexTerminator(rest, enc)
	if i < 0 {
		// No description terminator: treat everything as the text.
		frame.Text = decodeString(trimTerminator(rest, enc), enc)
		return frame, nil
	}
	frame.Description = decodeString(rest[:i], enc)
	text := rest[i+len(enc.terminator()):]
	frame.Text = decodeString(trimTerminator(text, enc), enc)
	return frame, nil
}

// PictureFrame is an APIC frame: an embedded image.
//
// The MIME type is always stored as Latin-1 regardless of Encoding,
// which only governs the description. Data is kept opaque; the image
// itself is never decoded.
type PictureFrame struct {
	Encoding    Encoding
	MIME        string
	PictureType byte
	Description string
	Data        []byte
}

func (f PictureFrame) ID() string { return FramePicture }

func (f PictureFrame) Body() []byte {
	body := []byte{byte(f.Encoding)}
	body = append(body, encodeString(f.MIME, EncodingLatin1)...)
	body = append(body, 0)
	body = append(body, f.PictureType)
	body = append(body, encodeString(f.Description, f.Encoding)...)
	body = append(body, f.Encoding.terminator()...)
	body = append(body, f.Data...)
	return body
}

func parsePictureFrame(body []byte) (Frame, error) {
	if len(body) < 4 {
		return nil, &FrameError{FrameID: FramePicture, Reason: "picture body shorter than 4 bytes"}
	}
	enc := normalizeEncoding(body[0])
	rest := body[1:]

	i := bytes.IndexByte(rest, 0)
	if i < 0 {
		return nil, &FrameError{FrameID: FramePicture, Reason: "missing MIME terminator"}
	}
	mime := decodeString(rest[:i], EncodingLatin1)
	rest = rest[i+1:]

	if len(rest) < 1 {
		return nil, &FrameError{FrameID: FramePicture, Reason: "missing picture type"}
	}
	picType := rest[0]
	rest = rest[1:]

	j := indexTerminator(rest, enc)
	if j < 0 {
		return nil, &FrameError{FrameID: FramePicture, Reason: "missing description terminator"}
	}
	desc := decodeString(rest[:j], enc)
	data := rest[j+len(enc.terminator()):]

	return PictureFrame{
		Encoding:    enc,
		MIME:        mime,
		PictureType: picType,
		Description: desc,
		Data:        bytes.Clone(data),
	}, nil
}

// OpaqueFrame preserves a frame whose identifier is not one of the
// recognized kinds. The raw payload survives a read-modify-write cycle
// byte for byte.
type OpaqueFrame struct {
	FrameID string
	Data    []byte
}

func (f OpaqueFrame) ID() string { return f.FrameID }

func (f OpaqueFrame) Body() []byte { return f.Data }

// parseFrameBody dispatches a frame payload to the matching variant.
// Text frames are recognized by the leading 'T' of their id, the way
// the format family defines them.
func parseFrameBody(id string, body []byte) (Frame, error) {
	switch {
	case id == FrameComment:
		return parseCommentFrame(body)
	case id == FramePicture:
		return parsePictureFrame(body)
	case len(id) > 0 && id[0] == 'T':
		return parseTextFrame(id, body)
	}
	return OpaqueFrame{FrameID: id, Data: bytes.Clone(body)}, nil
}
