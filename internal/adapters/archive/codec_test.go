package archive_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/adapters/archive"
)

func writeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestCodec_WalkSkipsPackagingEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bottles.1.0.0.0.nupkg")
	writeArchive(t, path, map[string]string{
		"Bottles.nuspec":                     "<package/>",
		"[Content_Types].xml":                "<Types/>",
		"_rels/.rels":                        "<Relationships/>",
		"package/services/metadata/core.xml": "<core/>",
		"lib/net40/Bottles.dll":              "binary",
		"content/My%20Folder/readme.txt":     "hello",
		"tools/init.ps1":                     "Write-Host",
	})

	got := map[string]string{}
	err := archive.NewCodec().Walk(path, func(name string, r io.Reader) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		got[name] = string(data)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"lib/net40/Bottles.dll":        "binary",
		"content/My Folder/readme.txt": "hello",
		"tools/init.ps1":               "Write-Host",
	}, got)
}

func TestCodec_Manifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bottles.1.0.0.0.nupkg")
	writeArchive(t, path, map[string]string{
		"Bottles.nuspec":        "<package>bottles</package>",
		"lib/other.nuspec":      "<package>nested</package>",
		"lib/net40/Bottles.dll": "binary",
	})

	data, err := archive.NewCodec().Manifest(path)
	require.NoError(t, err)
	assert.Equal(t, "<package>bottles</package>", string(data))
}

func TestCodec_ManifestMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Empty.1.0.0.0.nupkg")
	writeArchive(t, path, map[string]string{"lib/a.dll": "a"})

	_, err := archive.NewCodec().Manifest(path)
	assert.Error(t, err)
}

func TestCodec_WalkMissingArchive(t *testing.T) {
	err := archive.NewCodec().Walk(filepath.Join(t.TempDir(), "missing.nupkg"), func(string, io.Reader) error {
		return nil
	})
	assert.Error(t, err)
}

func TestCodec_WalkStopsOnCallbackError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bottles.1.0.0.0.nupkg")
	writeArchive(t, path, map[string]string{"lib/a.dll": "a", "lib/b.dll": "b"})

	calls := 0
	err := archive.NewCodec().Walk(path, func(string, io.Reader) error {
		calls++
		return io.ErrUnexpectedEOF
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
