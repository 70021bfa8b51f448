package id3_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/soundkit/id3"
)

// taggedFile writes a minimal tagged file and returns its path.
func taggedFile(t *testing.T, dir, name, title string) string {
	t.Helper()
	tag := id3.New()
	tag.Add(id3.Text(id3.FrameTitle, title))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, tag.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpen(t *testing.T) {
	path := taggedFile(t, t.TempDir(), "a.mp3", "Alpha")

	tag, err := id3.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if tag.Path() != path {
		t.Errorf("Path = %q, want %q", tag.Path(), path)
	}
	f, ok := tag.GetFirst(id3.FrameTitle)
	if !ok {
		t.Fatal("TIT2 not found")
	}
	if got := f.(id3.TextFrame).Values[0]; got != "Alpha" {
		t.Errorf("title = %q", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.mp3")

	tag, err := id3.Open(path)
	if err != nil {
		t.Fatalf("Open on a missing file = %v, want nil", err)
	}
	if tag.Len() != 0 {
		t.Errorf("missing file produced %d frames", tag.Len())
	}
	if tag.Path() != path {
		t.Errorf("Path = %q, want %q", tag.Path(), path)
	}
}

func TestOpenUnreadableDir(t *testing.T) {
	// Opening a directory is a real I/O error, not a missing tag.
	if _, err := id3.Open(t.TempDir()); err == nil {
		t.Error("expected an error opening a directory")
	}
}

func TestOpenStrictParsing(t *testing.T) {
	// A tag whose declared size overruns the file parses with a warning
	// normally, and fails under strict parsing.
	tag := id3.New()
	tag.Add(id3.Text(id3.FrameTitle, "T"))
	raw := tag.Bytes()
	raw[9] = 127

	path := filepath.Join(t.TempDir(), "bad.mp3")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	lenient, err := id3.Open(path)
	if err != nil {
		t.Fatalf("lenient open failed: %v", err)
	}
	if len(lenient.Warnings) == 0 {
		t.Fatal("expected a warning from the corrupt header")
	}

	if _, err := id3.Open(path, id3.WithStrictParsing()); err == nil {
		t.Error("strict open succeeded on a corrupt header")
	}
	if got, err := id3.Open(path, id3.WithIgnoreWarnings()); err != nil || len(got.Warnings) != 0 {
		t.Errorf("ignore-warnings open = %v, warnings %v", err, got.Warnings)
	}
}

func TestOpenContext(t *testing.T) {
	path := taggedFile(t, t.TempDir(), "a.mp3", "Alpha")

	if _, err := id3.OpenContext(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := id3.OpenContext(ctx, path); err == nil {
		t.Error("canceled context did not fail the open")
	}
}

func TestOpenMany(t *testing.T) {
	dir := t.TempDir()
	titles := []string{"One", "Two", "Three", "Four"}
	paths := make([]string, len(titles))
	for i, title := range titles {
		paths[i] = taggedFile(t, dir, title+".mp3", title)
	}

	tags, err := id3.OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != len(paths) {
		t.Fatalf("got %d tags, want %d", len(tags), len(paths))
	}
	for i, tag := range tags {
		f, ok := tag.GetFirst(id3.FrameTitle)
		if !ok {
			t.Fatalf("%s: no title", paths[i])
		}
		if got := f.(id3.TextFrame).Values[0]; got != titles[i] {
			t.Errorf("result %d: title %q, want %q (order not preserved?)", i, got, titles[i])
		}
	}
}

func TestOpenManyEmpty(t *testing.T) {
	tags, err := id3.OpenMany(context.Background())
	if err != nil || tags != nil {
		t.Errorf("OpenMany() = %v, %v", tags, err)
	}
}

func TestReadModifyWritePreservesUnknownFrames(t *testing.T) {
	src := id3.New()
	src.Add(id3.Text(id3.FrameTitle, "T"))
	src.Add(id3.OpaqueFrame{FrameID: "UFID", Data: []byte("owner\x00payload")})

	path := filepath.Join(t.TempDir(), "song.mp3")
	if err := os.WriteFile(path, src.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	tag, err := id3.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	tag.SetAll(id3.FrameTitle, []id3.Frame{id3.Text(id3.FrameTitle, "Renamed")})
	if err := tag.Save(); err != nil {
		t.Fatal(err)
	}

	got, err := id3.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := got.GetFirst("UFID")
	if !ok {
		t.Fatal("UFID lost across a read-modify-write cycle")
	}
	if !bytes.Equal(f.Body(), []byte("owner\x00payload")) {
		t.Errorf("UFID body = % x", f.Body())
	}
}
