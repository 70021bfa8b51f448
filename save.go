package id3

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the tag back to the file it was opened from.
//
// This is an atomic operation: the full output (tag plus the preserved
// trailing payload) is written to a temporary file first, then renamed
// over the target. If any step fails, the original file is unchanged.
//
// Returns ErrNoPath for a Tag that was not opened from a file; use
// SaveAs for those.
func (t *Tag) Save(opts ...SaveOption) error {
	if t.path == "" {
		return ErrNoPath
	}
	return t.SaveAs(t.path, opts...)
}

// SaveAs writes the tag to outputPath with the same atomic semantics as
// Save. The path the tag was opened from is not changed.
func (t *Tag) SaveAs(outputPath string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(outputPath); err == nil {
			origInfo = info
		}
	}

	// Temp file in the output directory so the rename stays on one
	// filesystem.
	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".id3-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := t.WriteTo(tempFile); err != nil {
		return fmt.Errorf("write tag: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	if options.preserveModTime && origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: file was written
	}

	if options.validate {
		if err := t.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-opens the written file and checks that the
// frames survived the round trip.
func (t *Tag) validateWrittenFile(path string) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	for _, id := range t.IDs() {
		if len(id) != 4 {
			continue // never written, see WriteTo
		}
		got, want := len(written.GetAll(id)), len(t.GetAll(id))
		if got != want {
			return fmt.Errorf("frame %s: got %d instances, want %d", id, got, want)
		}
	}
	return nil
}
