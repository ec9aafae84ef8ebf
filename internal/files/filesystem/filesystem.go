// Package filesystem abstracts the output tree behind a provider interface
// so the writer and the reconciliation engine can run against the real OS
// filesystem in production and an in-memory one in tests.
package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Provider is the filesystem surface the generation and reconciliation code
// depends on. Paths are provider-absolute; callers join against their root.
type Provider interface {
	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes content to path, creating or truncating the file.
	WriteFile(path string, content []byte) error

	// MkdirAll creates the directory and any missing parents.
	MkdirAll(path string) error

	// Remove deletes a file or an empty directory.
	Remove(path string) error

	// ReadDir reads the directory entries at the given path.
	ReadDir(path string) ([]FileInfo, error)
}
