package id3

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies the character encoding of a frame's text payload.
// The value is the marker byte stored on the wire.
type Encoding byte

const (
	// EncodingLatin1 is ISO-8859-1.
	EncodingLatin1 Encoding = 0
	// EncodingUTF16 is UTF-16 with a byte order mark. Tags written by
	// this package use little-endian with a leading 0xFF 0xFE BOM;
	// parsing honors a BOM of either endianness and assumes
	// little-endian when the BOM is missing.
	EncodingUTF16 Encoding = 1
	// EncodingUTF16BE is UTF-16 big-endian without a byte order mark.
	EncodingUTF16BE Encoding = 2
	// EncodingUTF8 is UTF-8.
	EncodingUTF8 Encoding = 3
)

// String returns the conventional name of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	}
	return "unknown"
}

// normalizeEncoding maps an on-disk marker byte to an Encoding.
// Out-of-range markers fall back to UTF-8; the independent taggers in
// the wild disagree on this fallback and UTF-8 is the lossless choice.
func normalizeEncoding(b byte) Encoding {
	if b > byte(EncodingUTF8) {
		return EncodingUTF8
	}
	return Encoding(b)
}

// terminator returns the null terminator for the encoding: one zero
// byte for the single-byte encodings, two for the UTF-16 variants.
func (e Encoding) terminator() []byte {
	switch e {
	case EncodingUTF16, EncodingUTF16BE:
		return []byte{0, 0}
	}
	return []byte{0}
}

// encodeString converts s to the target charset without a terminator.
// Unrepresentable or invalid sequences are substituted, never an error.
func encodeString(s string, enc Encoding) []byte {
	if s == "" {
		return nil
	}
	var e *encoding.Encoder
	switch enc {
	case EncodingLatin1:
		e = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	case EncodingUTF16:
		e = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	case EncodingUTF16BE:
		e = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	default:
		return []byte(s)
	}
	out, err := e.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return out
}

// decodeString converts charset bytes to a Go string. Malformed input
// is decoded with replacement characters rather than rejected.
func decodeString(b []byte, enc Encoding) string {
	if len(b) == 0 {
		return ""
	}
	var d *encoding.Decoder
	switch enc {
	case EncodingLatin1:
		d = charmap.ISO8859_1.NewDecoder()
	case EncodingUTF16:
		d = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case EncodingUTF16BE:
		d = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		return string(b)
	}
	out, err := d.Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// encodeText renders a value list: values joined on the
// encoding-appropriate null separator, one trailing terminator. An
// empty list still produces the lone terminator.
func encodeText(values []string, enc Encoding) []byte {
	joined := strings.Join(values, "\x00")
	return append(encodeString(joined, enc), enc.terminator()...)
}

// decodeText recovers a value list: strip one trailing terminator,
// split the remainder on the separator. An empty payload decodes to an
// empty list.
func decodeText(b []byte, enc Encoding) []string {
	if len(b) == 0 {
		return nil
	}
	s := strings.TrimSuffix(decodeString(b, enc), "\x00")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\x00")
}

// indexTerminator locates the first null terminator in b, scanning
// aligned 2-byte pairs for the UTF-16 encodings. Returns -1 if absent.
func indexTerminator(b []byte, enc Encoding) int {
	switch enc {
	case EncodingUTF16, EncodingUTF16BE:
		for i := 0; i+1 < len(b); i += 2 {
			if b[i] == 0 && b[i+1] == 0 {
				return i
			}
		}
		return -1
	}
	return bytes.IndexByte(b, 0)
}

// trimTerminator strips a single trailing terminator from b if one is
// present. Used when reading fields that other taggers terminate even
// though the format does not require it.
func trimTerminator(b []byte, enc Encoding) []byte {
	switch enc {
	case EncodingUTF16, EncodingUTF16BE:
		if len(b) >= 2 && b[len(b)-1] == 0 && b[len(b)-2] == 0 {
			return b[:len(b)-2]
		}
	default:
		if len(b) >= 1 && b[len(b)-1] == 0 {
			return b[:len(b)-1]
		}
	}
	return b
}
