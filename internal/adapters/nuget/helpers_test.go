package nuget_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/adapters/archive"
	"go.trai.ch/ripple/internal/adapters/fs"
	"go.trai.ch/ripple/internal/adapters/nuget"
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
)

// nopLogger discards messages and records warnings.
type nopLogger struct {
	warnings []string
}

func (l *nopLogger) Info(string)     {}
func (l *nopLogger) Warn(msg string) { l.warnings = append(l.warnings, msg) }
func (l *nopLogger) Error(error)     {}

var _ ports.Logger = (*nopLogger)(nil)

func newFileSystem() ports.FileSystem {
	return fs.NewFileSystem(fs.NewHasher())
}

// createNuget writes an empty archive placeholder named id.version.nupkg.
func createNuget(t *testing.T, dir, id, version string) string {
	t.Helper()

	path := filepath.Join(dir, id+"."+version+".nupkg")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

// createPackage writes a real archive with a manifest and the given payload.
func createPackage(t *testing.T, dir, id, version, nuspec string, payload map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, id+"."+version+".nupkg")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	entries := map[string]string{id + ".nuspec": nuspec, "[Content_Types].xml": "<Types/>"}
	for name, content := range payload {
		entries[name] = content
	}
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func openFile(t *testing.T, path string, layout domain.LayoutMode) *nuget.File {
	t.Helper()

	file, err := nuget.OpenFile(path, layout, newFileSystem(), codec)
	require.NoError(t, err)
	return file
}

func newSolution(dir string, feeds ...domain.FeedSource) *domain.Solution {
	sol := domain.NewSolution("Test")
	sol.Directory = dir
	sol.Feeds = feeds
	return sol
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()

	tree := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}

var codec = archive.NewCodec()
