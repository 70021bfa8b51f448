package id3

// Option configures behavior when opening or parsing tags.
//
// Options use the functional options pattern:
//
//	tag, err := id3.Open("song.mp3",
//	    id3.WithStrictParsing(),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool // fail Open on any warning
	ignoreWarnings bool // suppress all warnings
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{}
}

// WithStrictParsing treats any parse warning as a fatal error.
//
// By default the parser keeps going when it encounters a truncated or
// undecodable frame, returning a partial Tag plus warnings. With strict
// parsing enabled, Open fails on the first such issue instead. Parse
// has no error to return and ignores this option.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Use this when the caller does not care about data quality issues and
// does not want to carry the Warnings slice around.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}
