package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	m "github.com/anton-mel/macro-extract/internal/model"
)

// ChangeNotifier delivers typed file change events for a directory tree.
type ChangeNotifier interface {
	// Run watches root recursively and sends events on out until ctx is
	// done. It does not close out.
	Run(ctx context.Context, root m.Path, out chan<- m.Event) error
}

type fsChangeNotifier struct {
	skip []string
}

// NewChangeNotifier constructs a ChangeNotifier backed by fsnotify.
// Directories whose base name is in skip are not watched.
func NewChangeNotifier(skip []string) ChangeNotifier {
	return &fsChangeNotifier{skip: skip}
}

// Run implements ChangeNotifier.
func (n *fsChangeNotifier) Run(ctx context.Context, root m.Path, out chan<- m.Event) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create file watcher", "error", err)
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Warn("Failed to close file watcher", "error", err)
		}
	}()

	if err := n.addTree(watcher, string(root), nil); err != nil {
		slog.Error("Failed to watch directory", "root", root, "error", err)
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	slog.Info("Watching for changes", "root", root)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			for _, ev := range n.translate(watcher, event) {
				select {
				case out <- ev:
				case <-ctx.Done():
					return nil
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("File watcher error", "error", err)
		}
	}
}

// translate maps one fsnotify event onto zero or more model events. A new
// directory is watched and the files already inside it are reported as
// created.
func (n *fsChangeNotifier) translate(watcher *fsnotify.Watcher, event fsnotify.Event) []m.Event {
	now := time.Now()

	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return nil
		}

		if !info.IsDir() {
			return []m.Event{{Kind: m.EventCreate, Path: m.Path(event.Name), Time: now}}
		}

		if contains(n.skip, info.Name()) {
			return nil
		}

		var created []m.Event
		if err := n.addTree(watcher, event.Name, func(path string) {
			created = append(created, m.Event{Kind: m.EventCreate, Path: m.Path(path), Time: now})
		}); err != nil {
			slog.Warn("Failed to watch new directory", "path", event.Name, "error", err)
		}

		return created

	case event.Has(fsnotify.Write):
		return []m.Event{{Kind: m.EventModify, Path: m.Path(event.Name), Time: now}}

	case event.Has(fsnotify.Remove):
		return []m.Event{{Kind: m.EventRemove, Path: m.Path(event.Name), Time: now}}

	default:
		// Rename and chmod are not reported: editors rename backups around
		// saves and the artifacts must survive that.
		return nil
	}
}

// addTree watches dir and its sub-directories. onFile is called for every
// regular file found when not nil.
func (n *fsChangeNotifier) addTree(watcher *fsnotify.Watcher, dir string, onFile func(string)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			if onFile != nil && d.Type().IsRegular() {
				onFile(path)
			}

			return nil
		}

		if path != dir && contains(n.skip, d.Name()) {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}
