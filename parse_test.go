package id3

import (
	"bytes"
	"reflect"
	"testing"
)

// singleTitleTag is a complete v2.4 tag holding one UTF-8 TIT2 frame
// with the value "Track One".
var singleTitleTag = []byte{
	'I', 'D', '3', 4, 0, 0, // signature, version, revision, flags
	0, 0, 0, 21, // synchsafe tag size
	'T', 'I', 'T', '2',
	0, 0, 0, 11, // synchsafe frame size
	0, 0, // frame flags
	3, // UTF-8
	'T', 'r', 'a', 'c', 'k', ' ', 'O', 'n', 'e',
	0,
}

func TestRenderSingleTitle(t *testing.T) {
	tag := New()
	tag.Add(Text(FrameTitle, "Track One"))
	if got := tag.Bytes(); !bytes.Equal(got, singleTitleTag) {
		t.Errorf("Bytes() = % x\nwant      % x", got, singleTitleTag)
	}
}

func TestParseSingleTitle(t *testing.T) {
	tag := Parse(singleTitleTag)
	if tag.Version != 4 || tag.Revision != 0 || tag.Flags != 0 {
		t.Errorf("header = v2.%d.%d flags %#x", tag.Version, tag.Revision, tag.Flags)
	}
	if len(tag.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", tag.Warnings)
	}
	f, ok := tag.GetFirst(FrameTitle)
	if !ok {
		t.Fatal("TIT2 not found")
	}
	tf := f.(TextFrame)
	if !reflect.DeepEqual(tf.Values, []string{"Track One"}) {
		t.Errorf("Values = %q", tf.Values)
	}
}

func TestParseRoundTrip(t *testing.T) {
	src := New()
	src.Add(Text(FrameTitle, "Title"))
	src.Add(Text(FrameArtist, "A", "B"))
	src.Add(Comment("eng", "note", "some text"))
	src.Add(OpaqueFrame{FrameID: "UFID", Data: []byte{1, 2, 3}})

	out := Parse(src.Bytes()).Bytes()
	if !bytes.Equal(out, src.Bytes()) {
		t.Errorf("round trip changed bytes:\n% x\n% x", src.Bytes(), out)
	}
}

func TestParseEmptyBuffer(t *testing.T) {
	tag := Parse(nil)
	if tag.Len() != 0 || len(tag.Warnings) != 0 {
		t.Errorf("Parse(nil) = %d frames, warnings %v", tag.Len(), tag.Warnings)
	}
}

func TestParseNoSignature(t *testing.T) {
	payload := []byte("not a tag at all, just bytes")
	tag := Parse(payload)
	if tag.Len() != 0 {
		t.Errorf("found %d frames in untagged data", tag.Len())
	}

	// A save splices a fresh tag directly ahead of the original bytes.
	tag.Add(Text(FrameTitle, "New"))
	out := tag.Bytes()
	if !bytes.HasSuffix(out, payload) {
		t.Error("original bytes not preserved after the new tag")
	}
	if !bytes.HasPrefix(out, []byte(tagSignature)) {
		t.Error("output does not start with a tag header")
	}
}

func TestParsePaddingStopsFrameLoop(t *testing.T) {
	frame := Text(FrameTitle, "T").Body()
	body := framePacket(FrameTitle, frame)
	padding := make([]byte, 32)
	raw := tagPacket(append(body, padding...))

	tag := Parse(raw)
	if len(tag.Warnings) != 0 {
		t.Errorf("padding produced warnings: %v", tag.Warnings)
	}
	if _, ok := tag.GetFirst(FrameTitle); !ok {
		t.Fatal("TIT2 not found")
	}
	if !bytes.Equal(tag.Bytes()[len(tag.Bytes())-32:], padding) {
		t.Error("padding not preserved as trailing payload")
	}
}

func TestParseDeclaredSizeClamped(t *testing.T) {
	raw := tagPacket(framePacket(FrameTitle, Text(FrameTitle, "T").Body()))
	raw[9] = 127 // inflate the declared tag size past the buffer

	tag := Parse(raw)
	if _, ok := tag.GetFirst(FrameTitle); !ok {
		t.Fatal("TIT2 lost to the oversized declared size")
	}
	if len(tag.Warnings) != 1 || tag.Warnings[0].Stage != "header" {
		t.Errorf("warnings = %v", tag.Warnings)
	}
}

func TestParseBadFrameSkipped(t *testing.T) {
	// A COMM body shorter than its fixed prefix fails to parse. The
	// frame after it must still come through.
	body := framePacket(FrameComment, []byte{3, 'e'})
	body = append(body, framePacket(FrameTitle, Text(FrameTitle, "Survivor").Body())...)
	tag := Parse(tagPacket(body))

	if len(tag.Warnings) != 1 || tag.Warnings[0].Stage != "frame" {
		t.Fatalf("warnings = %v", tag.Warnings)
	}
	f, ok := tag.GetFirst(FrameTitle)
	if !ok {
		t.Fatal("frame after the broken one was lost")
	}
	if got := f.(TextFrame).Values; !reflect.DeepEqual(got, []string{"Survivor"}) {
		t.Errorf("Values = %q", got)
	}
}

func TestParseOversizedFrameStops(t *testing.T) {
	// One good frame, then a header whose declared size overruns the
	// tag. The loop stops and those bytes become trailing payload.
	body := framePacket(FrameTitle, Text(FrameTitle, "T").Body())
	bad := []byte{'T', 'P', 'E', '1', 0x0F, 0x7F, 0x7F, 0x7F, 0, 0}
	raw := tagPacket(append(body, bad...))

	tag := Parse(raw)
	if _, ok := tag.GetFirst(FrameTitle); !ok {
		t.Fatal("leading frame lost")
	}
	if _, ok := tag.GetFirst(FrameArtist); ok {
		t.Error("oversized frame should not have parsed")
	}
	if len(tag.Warnings) != 1 {
		t.Fatalf("warnings = %v", tag.Warnings)
	}
	if !bytes.HasSuffix(tag.Bytes(), bad) {
		t.Error("stopped-at bytes not preserved as trailing payload")
	}
}

func TestParseForeignVersionRewrittenAsV24(t *testing.T) {
	raw := tagPacket(framePacket(FrameTitle, Text(FrameTitle, "T").Body()))
	raw[3] = 3 // pretend v2.3

	tag := Parse(raw)
	if tag.Version != 3 {
		t.Errorf("Version = %d, want 3", tag.Version)
	}
	out := tag.Bytes()
	if out[3] != 4 || out[4] != 0 || out[5] != 0 {
		t.Errorf("rewritten header = % x, want v2.4 with zero flags", out[:6])
	}
}

func TestParseIgnoreWarnings(t *testing.T) {
	raw := tagPacket(framePacket(FrameComment, []byte{3}))
	if tag := Parse(raw); len(tag.Warnings) == 0 {
		t.Fatal("expected a warning without the option")
	}
	if tag := Parse(raw, WithIgnoreWarnings()); len(tag.Warnings) != 0 {
		t.Errorf("warnings survived WithIgnoreWarnings: %v", tag.Warnings)
	}
}

func TestWriteToSkipsUnwritableIDs(t *testing.T) {
	tag := New()
	tag.Add(OpaqueFrame{FrameID: "TOOLONGID", Data: []byte{1}})
	tag.Add(Text(FrameTitle, "T"))

	got := Parse(tag.Bytes())
	if got.Len() != 1 {
		t.Errorf("wrote %d frames, want 1", got.Len())
	}
}

func TestValidFrameID(t *testing.T) {
	valid := []string{"TIT2", "COMM", "AB12", "0000"}
	invalid := []string{"tit2", "TI 2", "TI\x002", "ID3\xff"}
	for _, id := range valid {
		if !validFrameID([]byte(id)) {
			t.Errorf("validFrameID(%q) = false", id)
		}
	}
	for _, id := range invalid {
		if validFrameID([]byte(id)) {
			t.Errorf("validFrameID(%q) = true", id)
		}
	}
}

// framePacket wraps a payload in a 10-byte frame header.
func framePacket(id string, payload []byte) []byte {
	size := synchsafeBytes(len(payload))
	out := append([]byte(id), size...)
	out = append(out, 0, 0)
	return append(out, payload...)
}

// tagPacket wraps frame packets in a 10-byte tag header.
func tagPacket(body []byte) []byte {
	out := append([]byte(tagSignature), 4, 0, 0)
	out = append(out, synchsafeBytes(len(body))...)
	return append(out, body...)
}

func synchsafeBytes(n int) []byte {
	return []byte{
		byte(n >> 21 & 0x7F),
		byte(n >> 14 & 0x7F),
		byte(n >> 7 & 0x7F),
		byte(n & 0x7F),
	}
}
