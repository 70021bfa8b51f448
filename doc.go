// Package id3 reads and writes ID3v2 tag containers.
//
// The package is a binary codec for the tag itself: a 10-byte header
// followed by length-prefixed frames, with synchsafe size fields and
// per-frame text encodings. It does not touch the audio stream; the
// bytes that follow the tag are carried through a read-modify-write
// cycle untouched.
//
// # Quick Start
//
// Reading and editing a tag:
//
//	tag, err := id3.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if f, ok := tag.GetFirst(id3.FrameTitle); ok {
//		fmt.Println(f.(id3.TextFrame).Values)
//	}
//
//	tag.SetAll(id3.FrameTitle, []id3.Frame{id3.Text(id3.FrameTitle, "New Title")})
//	if err := tag.Save(); err != nil {
//		log.Fatal(err)
//	}
//
// # Frames
//
// Frames come in four closed variants:
//
//   - TextFrame: multi-value text (TIT2, TPE1, TALB, ...)
//   - CommentFrame: COMM, language + description + text
//   - PictureFrame: APIC, embedded image with MIME and description
//   - OpaqueFrame: any unrecognized id, raw payload preserved
//
// Switch over the concrete type to inspect a frame. Unknown frame ids
// are not an error; they round-trip byte for byte as OpaqueFrame.
//
// # Graceful Degradation
//
// Parsing never fails. A buffer without an "ID3" signature yields an
// empty Tag (and saving it splices a fresh tag in front of the original
// bytes); truncated or undecodable frames stop or skip the frame loop
// and are reported through Tag.Warnings:
//
//	for _, w := range tag.Warnings {
//		log.Printf("warning: %s", w)
//	}
//
// Callers who prefer hard failures can opt in with WithStrictParsing.
//
// # Writing
//
// Save and SaveAs are atomic: the output is staged in a temporary file
// and renamed over the target, so a failed save leaves the original
// untouched. Size fields are recomputed on every write and tags are
// always written as ID3v2.4 with synchsafe frame sizes.
//
// # Concurrency
//
// Parsing is a pure function from a byte buffer to a Tag, and rendering
// the reverse. Independent Tags can be processed concurrently with no
// coordination; OpenMany does exactly that for batches of files. A
// single Tag is not safe for concurrent mutation.
package id3
