// Command id3watch watches a directory and logs tag metadata whenever a
// file appears or changes. Handy while testing taggers: point it at a
// directory and watch the frames update.
//
// Usage:
//
//	id3watch [-debug] <dir>
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/soundkit/id3"
)

var debug = flag.Bool("debug", false, "enable debug logging")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: id3watch [-debug] <dir>")
		os.Exit(1)
	}
	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	dir := flag.Arg(0)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("create watcher", "err", err)
		os.Exit(1)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		slog.Error("watch directory", "dir", dir, "err", err)
		os.Exit(1)
	}
	slog.Info("watching", "dir", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				slog.Debug("no more events, channel closed")
				return
			}
			handle(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				slog.Debug("no more errors, channel closed")
				return
			}
			slog.Warn("error while watching", "err", err)
		}
	}
}

func handle(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		tag, err := id3.Open(event.Name)
		if err != nil {
			slog.Warn("open tag", "file", event.Name, "err", err)
			return
		}
		slog.Info("tag",
			"file", event.Name,
			"op", event.Op.String(),
			"frames", tag.Len(),
			"title", firstText(tag, id3.FrameTitle),
			"artist", firstText(tag, id3.FrameArtist),
		)
		for _, w := range tag.Warnings {
			slog.Debug("parse warning", "file", event.Name, "warning", w.String())
		}

	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		slog.Info("gone", "file", event.Name, "op", event.Op.String())
	}
}

func firstText(tag *id3.Tag, id string) string {
	f, ok := tag.GetFirst(id)
	if !ok {
		return ""
	}
	if tf, ok := f.(id3.TextFrame); ok {
		return strings.Join(tf.Values, " / ")
	}
	return ""
}
