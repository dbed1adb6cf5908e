package application

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hoarder/internal/application/apptest"
	"hoarder/internal/domain"
)

var nopLogger = zap.NewNop().Sugar()

func TestSimilarityCache_PutIsAppendOnly(t *testing.T) {
	ctx := context.Background()
	store := &apptest.MemoryStore{}
	c := LoadSimilarityCache(ctx, store, true, nopLogger)

	first := []domain.Similarity{{Name: "C", ExternalID: "m2", Match: 0.9}}
	require.True(t, c.Put(ctx, "A", first))
	assert.False(t, c.Put(ctx, "A", []domain.Similarity{{Name: "D", Match: 1}}))

	got, ok := c.Get("A")
	require.True(t, ok)
	assert.Equal(t, first, got)
	assert.Equal(t, 1, store.Saves, "rejected put must not persist")
}

func TestSimilarityCache_WritesThroughAndReloads(t *testing.T) {
	ctx := context.Background()
	store := &apptest.MemoryStore{}

	c := LoadSimilarityCache(ctx, store, true, nopLogger)
	c.Put(ctx, "A", []domain.Similarity{{Name: "C", ExternalID: "m2", Match: 0.9}})
	c.Put(ctx, "B", nil)
	assert.Equal(t, 2, store.Saves)

	reloaded := LoadSimilarityCache(ctx, store, true, nopLogger)
	assert.Equal(t, []string{"A", "B"}, reloaded.Names())

	b, ok := reloaded.Get("B")
	require.True(t, ok)
	assert.Empty(t, b)
}

func TestSimilarityCache_DisabledStaysInMemory(t *testing.T) {
	ctx := context.Background()
	store := &apptest.MemoryStore{Payload: []byte(`[["X",[]]]`)}

	c := LoadSimilarityCache(ctx, store, false, nopLogger)
	assert.False(t, c.Enabled())
	assert.False(t, c.Has("X"), "disabled cache must not load")

	c.Put(ctx, "A", nil)
	assert.True(t, c.Has("A"))
	assert.Equal(t, 0, store.Saves)
	assert.Equal(t, `[["X",[]]]`, string(store.Payload))
}

func TestSimilarityCache_CorruptOrFailingStoreYieldsEmpty(t *testing.T) {
	ctx := context.Background()

	corrupt := &apptest.MemoryStore{Payload: []byte(`{not json`)}
	assert.Equal(t, 0, LoadSimilarityCache(ctx, corrupt, true, nopLogger).Len())

	failing := &apptest.MemoryStore{LoadErr: errors.New("disk gone")}
	assert.Equal(t, 0, LoadSimilarityCache(ctx, failing, true, nopLogger).Len())
}

func TestSimilarityCache_SaveFailureIsAbsorbed(t *testing.T) {
	ctx := context.Background()
	store := &apptest.MemoryStore{SaveErr: errors.New("read-only")}

	c := LoadSimilarityCache(ctx, store, true, nil)
	assert.True(t, c.Put(ctx, "A", nil))
	assert.True(t, c.Has("A"))
}

func TestSimilarityCache_DuplicateLoadedNamesKeepFirst(t *testing.T) {
	ctx := context.Background()
	store := &apptest.MemoryStore{Payload: []byte(`[["A",[{"artist":"B","mbid":"","match":1}]],["A",[]]]`)}

	c := LoadSimilarityCache(ctx, store, true, nopLogger)
	got, _ := c.Get("A")
	assert.Len(t, got, 1)
	assert.Equal(t, 1, c.Len())
}

func TestSimilarityCache_ForgetAndClear(t *testing.T) {
	ctx := context.Background()
	store := &apptest.MemoryStore{}
	c := LoadSimilarityCache(ctx, store, true, nopLogger)
	c.Put(ctx, "A", nil)
	c.Put(ctx, "B", nil)

	require.NoError(t, c.Forget(ctx, "A"))
	assert.Equal(t, []string{"B"}, c.Names())
	assert.True(t, errors.Is(c.Forget(ctx, "A"), ErrNotFound))

	require.NoError(t, c.Clear(ctx))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "[]", string(store.Payload))
}

func TestSimilarityCache_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := NewSimilarityCache(nil, true, nopLogger)
	c.Put(ctx, "A", []domain.Similarity{{Name: "B", Match: 1}})

	got, _ := c.Get("A")
	got[0].Name = "mutated"

	again, _ := c.Get("A")
	assert.Equal(t, "B", again[0].Name)
	assert.False(t, c.Enabled(), "nil store cannot be enabled")
}
