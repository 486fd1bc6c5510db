package runner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// skippedDirs are never descended into.
var skippedDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
}

// watcher wraps fsnotify with recursive directory registration.
type watcher struct {
	fs     *fsnotify.Watcher
	logger *zap.Logger
}

func newWatcher(logger *zap.Logger) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &watcher{fs: fw, logger: logger}, nil
}

// Close stops the underlying watcher.
func (w *watcher) Close() error {
	return w.fs.Close()
}

// addRecursive watches root and, when root is a directory, every directory
// below it except hidden and vendored ones.
func (w *watcher) addRecursive(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return w.fs.Add(root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fs.Add(path)
	})
}

// handle reports whether event should trigger a reload. Directories created
// under a watched tree are registered on the way.
func (w *watcher) handle(event fsnotify.Event) bool {
	if !isWrite(event) || ignoredFile(filepath.Base(event.Name)) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if skipDir(info.Name()) {
				return false
			}
			if err := w.addRecursive(event.Name); err != nil {
				w.logger.Warn("Cannot watch new directory", zap.String("path", event.Name), zap.Error(err))
			}
		}
	}
	return true
}

func skipDir(name string) bool {
	return skippedDirs[name] || (strings.HasPrefix(name, ".") && name != "." && name != "..")
}

// ignoredFile filters editor swap and backup files.
func ignoredFile(name string) bool {
	return strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".swp") ||
		strings.HasSuffix(name, ".swx") ||
		strings.HasPrefix(name, ".#")
}
