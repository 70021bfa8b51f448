package id3

// SaveOption configures behavior when saving tags.
//
//	err := tag.Save(
//	    id3.WithBackup(".bak"),
//	    id3.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for saving files.
type saveOptions struct {
	backupSuffix    string // suffix for backup file (e.g. ".bak")
	validate        bool   // re-read after write to verify
	preserveModTime bool   // keep original modification time
}

// defaultSaveOptions returns the default configuration for saving.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// WithBackup keeps the original file before saving, renamed with the
// given suffix. For example, WithBackup(".bak") preserves "song.mp3" as
// "song.mp3.bak". An existing backup is overwritten.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithValidation re-reads the file after writing and verifies that the
// written frames parse back. Adds a full re-parse of the output file.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPreserveModTime keeps the original file modification time instead
// of letting the save update it.
func WithPreserveModTime() SaveOption {
	return func(o *saveOptions) {
		o.preserveModTime = true
	}
}
