package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoarder/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_LoadEmpty(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	version, err := store.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	entries := []domain.CacheEntry{
		{Artist: "Boards of Canada", Similar: []domain.Similarity{{Name: "Tycho", ExternalID: "m2", Match: 0.9}}},
		{Artist: "Aphex Twin", Similar: []domain.Similarity{}},
	}
	require.NoError(t, store.Save(ctx, entries))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	// overwrite keeps a single row
	require.NoError(t, store.Save(ctx, entries[:1]))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries[:1], got)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, []domain.CacheEntry{{Artist: "A", Similar: []domain.Similarity{}}}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Artist)
}

func TestStore_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	_, err := store.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, similaritiesKey, "{not json")
	require.NoError(t, err)

	_, err = store.Load(ctx)
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/hoarder/cache.db", DefaultPath())
}
