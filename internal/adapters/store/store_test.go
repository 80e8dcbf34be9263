package store_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/adapters/store"
	"go.trai.ch/ripple/internal/core/domain"
)

func record(t *testing.T, root, name, version string) domain.RestoreRecord {
	t.Helper()

	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	return domain.RestoreRecord{
		Name:      name,
		Version:   version,
		Checksum:  "0123456789abcdef",
		Directory: dir,
		Timestamp: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	rec := record(t, root, "FubuCore", "1.0.0.0")
	require.NoError(t, s.Put(root, rec))

	got, err := s.Get(root, "fubucore")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)

	missing, err := s.Get(root, "Bottles")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_Persistence(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, store.NewStore().Put(root, record(t, root, "Bottles", "1.0.0.0")))
	assert.FileExists(t, filepath.Join(root, domain.RestoreFileName))

	got, err := store.NewStore().Get(root, "Bottles")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1.0.0.0", got.Version)
}

func TestStore_MissingDirectory(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	rec := record(t, root, "Bottles", "1.0.0.0")
	require.NoError(t, s.Put(root, rec))
	require.NoError(t, os.RemoveAll(rec.Directory))

	got, err := s.Get(root, "Bottles")
	require.NoError(t, err)
	assert.Nil(t, got, "a deleted package directory invalidates its record")
}

func TestStore_Corrupt(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.RestoreFileName), []byte("{not json"), 0o600))

	_, err := store.NewStore().Get(root, "Bottles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal restore records")
}

func TestStore_SeparateRoots(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	s := store.NewStore()

	require.NoError(t, s.Put(a, record(t, a, "FubuCore", "1.0.0.0")))

	got, err := s.Get(b, "FubuCore")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ConcurrentPut(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	records := make([]domain.RestoreRecord, len(names))
	for i, name := range names {
		records[i] = record(t, root, name, "1.0.0.0")
	}

	var wg sync.WaitGroup
	for _, rec := range records {
		wg.Go(func() {
			assert.NoError(t, s.Put(root, rec))
		})
	}
	wg.Wait()

	reloaded := store.NewStore()
	for _, name := range names {
		got, err := reloaded.Get(root, name)
		require.NoError(t, err)
		assert.NotNil(t, got, name)
	}
}

func TestStore_ConcurrentGetAndPut(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	seed := record(t, root, "Seed", "1.0.0.0")
	require.NoError(t, s.Put(root, seed))

	var records []domain.RestoreRecord
	for i := range 8 {
		records = append(records, record(t, root, "Package"+string(rune('A'+i)), "1.0.0.0"))
	}

	var wg sync.WaitGroup
	for _, rec := range records {
		wg.Go(func() {
			assert.NoError(t, s.Put(root, rec))
		})
		wg.Go(func() {
			got, err := s.Get(root, "seed")
			assert.NoError(t, err)
			if assert.NotNil(t, got) {
				assert.Equal(t, seed, *got)
			}
		})
	}
	wg.Wait()

	for _, rec := range records {
		got, err := s.Get(root, rec.Name)
		require.NoError(t, err)
		assert.NotNil(t, got, rec.Name)
	}
}
