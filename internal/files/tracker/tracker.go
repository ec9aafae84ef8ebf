package tracker

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/rsscripter/rsscripter/internal/files/filesystem"
)

// Tracker records the relative paths produced by the current run. Lookups are
// case-insensitive so a tracked "Schemas/Sales" also claims "schemas/sales"
// on case-preserving filesystems.
type Tracker struct {
	paths map[string]struct{}
}

// NewTracker creates an empty path tracker.
func NewTracker() *Tracker {
	return &Tracker{paths: make(map[string]struct{})}
}

func trackerKey(relPath string) string {
	return strings.ToLower(path.Clean(filepath.ToSlash(relPath)))
}

// Record marks a relative file path, and every ancestor directory of it, as
// produced by this run.
func (t *Tracker) Record(relPath string) {
	key := trackerKey(relPath)
	for key != "." && key != "/" {
		t.paths[key] = struct{}{}
		key = path.Dir(key)
	}
}

// Contains reports whether relPath (a file or directory) was produced by this
// run.
func (t *Tracker) Contains(relPath string) bool {
	_, ok := t.paths[trackerKey(relPath)]
	return ok
}

// Len returns the number of tracked paths, directories included.
func (t *Tracker) Len() int {
	return len(t.paths)
}

// Writer persists rendered scripts under a root directory and records each
// written path in a Tracker. Writes are synchronous and overwrite any
// existing file unconditionally; content comparison is not performed.
type Writer struct {
	fs      filesystem.Provider
	root    string
	tracker *Tracker
}

// NewWriter creates a script writer rooted at root.
//
// Parameters:
//   - fs: the filesystem provider (must not be nil)
//   - root: the output root directory
//   - tracker: the path tracker to record into (must not be nil)
func NewWriter(fs filesystem.Provider, root string, tracker *Tracker) *Writer {
	if fs == nil {
		panic("tracker: filesystem provider cannot be nil")
	}
	if tracker == nil {
		panic("tracker: tracker cannot be nil")
	}
	return &Writer{fs: fs, root: root, tracker: tracker}
}

// Root returns the output root directory.
func (w *Writer) Root() string {
	return w.root
}

// Tracker returns the tracker the writer records into.
func (w *Writer) Tracker() *Tracker {
	return w.tracker
}

// Write stores content at the layout-relative path relPath, creating parent
// directories as needed, and records the path as produced.
func (w *Writer) Write(relPath string, content string) error {
	full := filepath.Join(w.root, filepath.FromSlash(relPath))
	if dir := filepath.Dir(full); dir != "." {
		if err := w.fs.MkdirAll(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := w.fs.WriteFile(full, []byte(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	w.tracker.Record(relPath)
	return nil
}
