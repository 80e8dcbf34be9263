package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/adapters/fs"
)

func newFileSystem() *fs.FileSystem {
	return fs.NewFileSystem(fs.NewHasher())
}

func TestFileSystem_WriteFileCreatesParents(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "a", "b", "c.txt")

	require.NoError(t, newFileSystem().WriteFile(target, strings.NewReader("content")))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestFileSystem_CleanDirectory(t *testing.T) {
	root := t.TempDir()
	sys := newFileSystem()

	require.NoError(t, sys.WriteFile(filepath.Join(root, "file.txt"), strings.NewReader("x")))
	require.NoError(t, sys.WriteFile(filepath.Join(root, "nested", "deep.txt"), strings.NewReader("y")))

	require.NoError(t, sys.CleanDirectory(root))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.NoError(t, sys.CleanDirectory(filepath.Join(root, "missing")))
}

func TestFileSystem_CopyAndDelete(t *testing.T) {
	root := t.TempDir()
	sys := newFileSystem()
	src := filepath.Join(root, "src.nupkg")
	dst := filepath.Join(root, "out", "dst.nupkg")

	require.NoError(t, os.WriteFile(src, []byte("archive"), 0o600))
	require.NoError(t, sys.Copy(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "archive", string(data))

	require.NoError(t, sys.DeleteFile(src))
	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, sys.DeleteFile(src), "deleting a missing file is not an error")
	assert.Error(t, sys.Copy(src, dst))
}

func TestFileSystem_FindFiles(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.1.0.nupkg", "a.1.0.nupkg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir.nupkg"), 0o750))

	files, err := newFileSystem().FindFiles(root, "*.nupkg")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.1.0.nupkg"),
		filepath.Join(root, "b.1.0.nupkg"),
	}, files)

	_, err = newFileSystem().FindFiles(filepath.Join(root, "missing"), "*.nupkg")
	assert.Error(t, err)
}

func TestFileSystem_Hash(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	b := filepath.Join(root, "b")
	c := filepath.Join(root, "c")
	require.NoError(t, os.WriteFile(a, []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(c, []byte("different"), 0o600))

	sys := newFileSystem()
	ha, err := sys.Hash(a)
	require.NoError(t, err)
	hb, err := sys.Hash(b)
	require.NoError(t, err)
	hc, err := sys.Hash(c)
	require.NoError(t, err)

	assert.Len(t, ha, 16)
	assert.Equal(t, ha, hb)
	assert.NotEqual(t, ha, hc)

	_, err = sys.Hash(filepath.Join(root, "missing"))
	assert.Error(t, err)
}
