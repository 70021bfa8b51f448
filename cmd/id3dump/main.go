// Command id3dump prints the frames of one or more tagged files.
//
// Useful to confirm what a tagger actually wrote, including frames this
// library only carries opaquely.
//
// Usage:
//
//	id3dump [-raw] <file> [<file>...]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soundkit/id3"
)

var raw = flag.Bool("raw", false, "print opaque frame payloads as hex")

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: id3dump [-raw] <file> [<file>...]")
		os.Exit(1)
	}

	exit := 0
	for _, path := range flag.Args() {
		if err := dump(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func dump(path string) error {
	tag, err := id3.Open(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: ID3v2.%d.%d, %d frame(s)\n", path, tag.Version, tag.Revision, tag.Len())
	for _, id := range tag.IDs() {
		for _, f := range tag.GetAll(id) {
			fmt.Printf("  %s  %s\n", id, describe(f))
		}
	}
	for _, w := range tag.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	return nil
}

func describe(f id3.Frame) string {
	switch f := f.(type) {
	case id3.TextFrame:
		return fmt.Sprintf("(%s) %s", f.Encoding, strings.Join(f.Values, " / "))
	case id3.CommentFrame:
		return fmt.Sprintf("(%s) [%s] %s: %s", f.Encoding, f.Language[:], f.Description, f.Text)
	case id3.PictureFrame:
		return fmt.Sprintf("(%s) %s type=%d %q, %d bytes", f.Encoding, f.MIME, f.PictureType, f.Description, len(f.Data))
	case id3.OpaqueFrame:
		if *raw {
			return fmt.Sprintf("opaque, % x", f.Data)
		}
		return fmt.Sprintf("opaque, %d bytes", len(f.Data))
	}
	return "?"
}
