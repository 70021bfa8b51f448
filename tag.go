package id3

import "slices"

// Tag is an ID3v2 tag container: an ordered collection of frames keyed
// by their 4-character identifier, plus whatever bytes followed the tag
// in the source file (usually the audio stream), preserved verbatim for
// Save.
//
// A Tag and its frames are exclusively owned by the caller. Instances
// are not safe for concurrent mutation; independent Tags may be parsed
// and rendered concurrently without coordination.
type Tag struct {
	// Version, Revision and Flags are the header bytes recorded at
	// parse time. They do not change parsing behavior and tags are
	// always written as ID3v2.4 with zero flags.
	Version  byte
	Revision byte
	Flags    byte

	// Warnings collected while parsing (non-fatal issues).
	Warnings []Warning

	frames   map[string][]Frame
	order    []string // frame ids in first-insertion order
	trailing []byte   // bytes after the tag in the source buffer
	path     string   // file the tag was opened from, if any
}

// New returns an empty Tag not associated with any file.
func New() *Tag {
	return &Tag{Version: 4, frames: make(map[string][]Frame)}
}

// Add appends a frame to the list for its identifier. Duplicate frames
// are kept; use SetAll to replace.
func (t *Tag) Add(f Frame) {
	t.addFrame(f.ID(), f)
}

func (t *Tag) addFrame(id string, f Frame) {
	if _, ok := t.frames[id]; !ok {
		t.order = append(t.order, id)
	}
	t.frames[id] = append(t.frames[id], f)
}

// GetAll returns the live frame list for id, in insertion order.
// The result is nil if no frame with that identifier exists.
func (t *Tag) GetAll(id string) []Frame {
	return t.frames[id]
}

// GetFirst returns the first frame with the given identifier.
func (t *Tag) GetFirst(id string) (Frame, bool) {
	fs := t.frames[id]
	if len(fs) == 0 {
		return nil, false
	}
	return fs[0], true
}

// SetAll replaces every frame stored under id with the given list.
// Passing an empty list is equivalent to DelAll.
func (t *Tag) SetAll(id string, frames []Frame) {
	if len(frames) == 0 {
		t.DelAll(id)
		return
	}
	if _, ok := t.frames[id]; !ok {
		t.order = append(t.order, id)
	}
	t.frames[id] = slices.Clone(frames)
}

// DelAll removes every frame with the given identifier. Removing an
// absent identifier is not an error.
func (t *Tag) DelAll(id string) {
	if _, ok := t.frames[id]; !ok {
		return
	}
	delete(t.frames, id)
	t.order = slices.DeleteFunc(t.order, func(s string) bool { return s == id })
}

// IDs returns the stored frame identifiers in first-insertion order,
// which is also the order frames are written in.
func (t *Tag) IDs() []string {
	return slices.Clone(t.order)
}

// Len returns the total number of frames in the tag.
func (t *Tag) Len() int {
	n := 0
	for _, fs := range t.frames {
		n += len(fs)
	}
	return n
}

// Path returns the file path the tag was opened from, or "" for a tag
// created with New or Parse.
func (t *Tag) Path() string {
	return t.path
}

func (t *Tag) warn(stage string, offset int64, msg string) {
	t.Warnings = append(t.Warnings, Warning{Stage: stage, Message: msg, Offset: offset})
}
