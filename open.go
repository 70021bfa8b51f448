package id3

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Open reads the whole file at path and parses its leading tag.
//
// Malformed or truncated tags never fail an Open; they degrade to a
// partial or empty Tag with Warnings. A file that does not exist yet
// also yields an empty Tag bound to path, so a caller can build tags
// for files it is about to create:
//
//	tag, err := id3.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	tag.Add(id3.Text(id3.FrameTitle, "Track One"))
//	return tag.Save()
//
// Other I/O failures (permissions, unreadable media) are returned as
// errors.
func Open(path string, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// "No tag yet" is a valid, common state.
			t := New()
			t.path = path
			return t, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	t := New()
	t.parseBuffer(data)
	t.path = path

	if options.strictParsing && len(t.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", t.Warnings[0].Message)
	}
	if options.ignoreWarnings {
		t.Warnings = nil
	}
	return t, nil
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open that checks the context before
// starting; parsing itself is a single in-memory pass and does not
// block.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines
// and results are returned in the same order as the input paths. If any
// file fails to open, the first error is returned.
//
//	tags, err := id3.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range tags {
//		fmt.Println(t.Path(), t.Len())
//	}
func OpenMany(ctx context.Context, paths ...string) ([]*Tag, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tag, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			t, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
