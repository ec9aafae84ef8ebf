package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryWriteAndReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")

	require.NoError(t, mfs.WriteFile("/out/Schemas/public/Tables/orders.sql", []byte("CREATE TABLE ...")))

	content, err := mfs.ReadFile("/out/Schemas/public/Tables/orders.sql")
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE ...", string(content))
}

func TestMemoryWriteCreatesParentDirectories(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")

	require.NoError(t, mfs.WriteFile("/out/a/b/c.sql", []byte("x")))

	entries, err := mfs.ReadDir("/out/a")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Name())
	assert.True(t, entries[0].IsDir())
}

func TestMemoryRelativePathsResolveAgainstRoot(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")

	require.NoError(t, mfs.WriteFile("Database.sql", []byte("x")))

	assert.True(t, mfs.Exists("/out/Database.sql"))
}

func TestMemoryReadFileNotFound(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")

	_, err := mfs.ReadFile("/out/missing.sql")
	assert.Error(t, err)
}

func TestMemoryWriteOverwrites(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")

	require.NoError(t, mfs.WriteFile("/out/f.sql", []byte("first")))
	require.NoError(t, mfs.WriteFile("/out/f.sql", []byte("second")))

	content, err := mfs.ReadFile("/out/f.sql")
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestMemoryWriteRefusesDirectoryPath(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")
	require.NoError(t, mfs.MkdirAll("/out/dir"))

	assert.Error(t, mfs.WriteFile("/out/dir", []byte("x")))
}

func TestMemoryReadDirSortedEntries(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")
	require.NoError(t, mfs.WriteFile("/out/dir/b.sql", []byte("x")))
	require.NoError(t, mfs.WriteFile("/out/dir/a.sql", []byte("x")))
	require.NoError(t, mfs.MkdirAll("/out/dir/sub"))

	entries, err := mfs.ReadDir("/out/dir")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a.sql", entries[0].Name())
	assert.Equal(t, "b.sql", entries[1].Name())
	assert.Equal(t, "sub", entries[2].Name())
	assert.True(t, entries[2].IsDir())
}

func TestMemoryReadDirExcludesNestedPaths(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")
	require.NoError(t, mfs.WriteFile("/out/dir/sub/deep.sql", []byte("x")))

	entries, err := mfs.ReadDir("/out/dir")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sub", entries[0].Name())
}

func TestMemoryRemoveFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")
	require.NoError(t, mfs.WriteFile("/out/f.sql", []byte("x")))

	require.NoError(t, mfs.Remove("/out/f.sql"))
	assert.False(t, mfs.Exists("/out/f.sql"))
}

func TestMemoryRemoveRefusesNonEmptyDirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")
	require.NoError(t, mfs.WriteFile("/out/dir/f.sql", []byte("x")))

	assert.Error(t, mfs.Remove("/out/dir"))

	require.NoError(t, mfs.Remove("/out/dir/f.sql"))
	require.NoError(t, mfs.Remove("/out/dir"))
	assert.False(t, mfs.Exists("/out/dir"))
}

func TestMemoryMkdirAllIdempotent(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")

	require.NoError(t, mfs.MkdirAll("/out/a/b"))
	require.NoError(t, mfs.MkdirAll("/out/a/b"))

	entries, err := mfs.ReadDir("/out/a")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}
