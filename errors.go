package id3

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned by Save when the tag was not opened from a file
// and no explicit path is available.
var ErrNoPath = errors.New("id3: tag has no associated path")

// FrameError describes a frame payload that could not be decoded,
// typically because it is shorter than the minimum for its kind. The
// container parser skips such frames and records a Warning; FrameError
// surfaces directly only from the per-frame parse functions.
type FrameError struct {
	// FrameID is the 4-character identifier of the offending frame.
	FrameID string

	// Offset is the position of the frame header within the parsed
	// buffer, when known (0 otherwise).
	Offset int64

	// Reason describes what was wrong with the payload.
	Reason string
}

func (e *FrameError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("frame %s at offset %d: %s", e.FrameID, e.Offset, e.Reason)
	}
	return fmt.Sprintf("frame %s: %s", e.FrameID, e.Reason)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Corrupt or truncated input never fails a parse; the decoder stops or
// skips and records what it saw here. Warnings are collected in
// Tag.Warnings.
type Warning struct {
	// Stage where the warning occurred: "header" or "frame".
	Stage string

	// Warning message.
	Message string

	// Byte offset within the parsed buffer (0 if not applicable).
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
