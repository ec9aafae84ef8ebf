package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements Provider for in-memory testing.
// Paths are normalized to forward slashes (virtual filesystem convention).
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // absolute path -> entry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = mfs.newDirEntry(root)
	return mfs
}

func (mfs *MemoryFileSystem) newDirEntry(absPath string) *memoryEntry {
	return &memoryEntry{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// abs resolves a possibly-relative path against the virtual root.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !strings.HasPrefix(p, "/") && !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file, creating parent directory entries as needed.
// Exists alongside WriteFile for test-fixture readability.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	_ = mfs.WriteFile(filePath, []byte(content))
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, ok := mfs.entries[mfs.abs(filePath)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filePath)
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

func (mfs *MemoryFileSystem) WriteFile(filePath string, content []byte) error {
	absPath := mfs.abs(filePath)
	if existing, ok := mfs.entries[absPath]; ok && existing.info.isDir {
		return fmt.Errorf("path is a directory: %s", filePath)
	}
	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: append([]byte(nil), content...),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
			isDir:   false,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
	return nil
}

func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	absPath := mfs.abs(dirPath)
	if existing, ok := mfs.entries[absPath]; ok {
		if !existing.info.isDir {
			return fmt.Errorf("path exists and is not a directory: %s", dirPath)
		}
		return nil
	}
	mfs.entries[absPath] = mfs.newDirEntry(absPath)
	mfs.ensureDirectoriesExist(absPath)
	return nil
}

func (mfs *MemoryFileSystem) Remove(p string) error {
	absPath := mfs.abs(p)
	entry, ok := mfs.entries[absPath]
	if !ok {
		return fmt.Errorf("path not found: %s", p)
	}
	if entry.info.isDir {
		for other := range mfs.entries {
			if strings.HasPrefix(other, absPath+"/") {
				return fmt.Errorf("directory not empty: %s", p)
			}
		}
	}
	delete(mfs.entries, absPath)
	return nil
}

func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.abs(dirPath)
	entry, ok := mfs.entries[absPath]
	if !ok {
		return nil, fmt.Errorf("directory not found: %s", dirPath)
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for other, e := range mfs.entries {
		if path.Dir(other) == absPath && other != absPath {
			result = append(result, e.info)
		}
	}
	// Deterministic order for tests.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// Exists reports whether a path is present. Test helper.
func (mfs *MemoryFileSystem) Exists(p string) bool {
	_, ok := mfs.entries[mfs.abs(p)]
	return ok
}

// ensureDirectoriesExist creates directory entries for all parents.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.entries[dir] = mfs.newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// Verify MemoryFileSystem implements the Provider interface at compile time
var _ Provider = (*MemoryFileSystem)(nil)
