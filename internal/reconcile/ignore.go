// Package reconcile compares the output directory against the paths the
// current run produced and resolves any drift — stale script files and
// leftover empty directories — through a pluggable decision policy.
package reconcile

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/rsscripter/rsscripter/internal/files/filesystem"
	"github.com/rsscripter/rsscripter/internal/files/tracker"
)

// IgnoreList is the persisted set of output-relative paths the user told
// previous runs to leave alone. One pattern per line; a trailing wildcard
// component expands against the real directory at load time.
type IgnoreList struct {
	fs       filesystem.Provider
	root     string
	patterns []string
	modified bool
}

// LoadIgnoreList reads the ignore file under root. A missing file yields an
// empty list.
func LoadIgnoreList(fs filesystem.Provider, root string) *IgnoreList {
	list := &IgnoreList{fs: fs, root: root}
	content, err := fs.ReadFile(filepath.Join(root, tracker.IgnoreFilePath()))
	if err != nil {
		return list
	}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		list.patterns = append(list.patterns, line)
	}
	return list
}

// Materialize expands every pattern to literal relative paths and records
// them in the tracked set, so reconciliation treats ignored files as if this
// run had produced them.
func (l *IgnoreList) Materialize(t *tracker.Tracker) {
	for _, pattern := range l.patterns {
		pattern = filepath.ToSlash(pattern)
		if !strings.Contains(path.Base(pattern), "*") {
			t.Record(pattern)
			continue
		}
		dir := path.Dir(pattern)
		readDir := filepath.Join(l.root, filepath.FromSlash(dir))
		if dir == "." {
			readDir = l.root
		}
		entries, err := l.fs.ReadDir(readDir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			matched, err := path.Match(path.Base(pattern), entry.Name())
			if err != nil || !matched {
				continue
			}
			if dir == "." {
				t.Record(entry.Name())
			} else {
				t.Record(path.Join(dir, entry.Name()))
			}
		}
	}
}

// Append adds a path to the list and marks it for persistence.
func (l *IgnoreList) Append(relPath string) {
	l.patterns = append(l.patterns, filepath.ToSlash(relPath))
	l.modified = true
}

// Save rewrites the ignore file, but only when the list changed this run.
func (l *IgnoreList) Save() error {
	if !l.modified {
		return nil
	}
	content := strings.Join(l.patterns, "\n") + "\n"
	if err := l.fs.WriteFile(filepath.Join(l.root, tracker.IgnoreFilePath()), []byte(content)); err != nil {
		return err
	}
	l.modified = false
	return nil
}

// Patterns returns the current patterns in order.
func (l *IgnoreList) Patterns() []string {
	return append([]string(nil), l.patterns...)
}
