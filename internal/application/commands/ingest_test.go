package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoarder/internal/domain"
)

func TestIngestCatalogCommand_SplitsAndMerges(t *testing.T) {
	registry := domain.NewRegistry()
	cmd := NewIngestCatalogCommand(registry, nopLogger)

	got := cmd.Execute([]domain.CatalogArtist{
		{Name: "A & B", ExternalID: "m1", AlbumCount: 2},
		{Name: "B", ExternalID: "m-b", AlbumCount: 3},
		{Name: "C feat. A", ExternalID: "m3", AlbumCount: 1},
	})

	require.Same(t, registry, got)
	assert.Equal(t, []string{"A", "B", "C"}, registry.Names())

	a, _ := registry.Get("A")
	assert.Equal(t, domain.Artist{ID: 0, ExternalID: "m1", AlbumCount: 3}, a)

	b, _ := registry.Get("B")
	assert.Equal(t, domain.Artist{ID: 1, ExternalID: "m1", AlbumCount: 5}, b, "external id of first sighting is kept")

	c, _ := registry.Get("C")
	assert.Equal(t, domain.Artist{ID: 2, ExternalID: "m3", AlbumCount: 1}, c)
}

func TestIngestCatalogCommand_IDsAreDenseAndUnique(t *testing.T) {
	registry := domain.NewRegistry()
	NewIngestCatalogCommand(registry, nopLogger).Execute([]domain.CatalogArtist{
		{Name: "X, Y", AlbumCount: 1},
		{Name: "Y / Z", AlbumCount: 1},
		{Name: "X", AlbumCount: 1},
		{Name: "W and X", AlbumCount: 1},
	})

	artists := registry.Artists()
	require.Len(t, artists, 4)

	seen := map[string]bool{}
	for i, a := range artists {
		assert.Equal(t, i, a.ID)
		assert.False(t, seen[a.Name], "duplicate record for %s", a.Name)
		seen[a.Name] = true
	}
}

func TestIngestCatalogCommand_ResetsPreviousRun(t *testing.T) {
	registry := domain.NewRegistry()
	registry.Add("Old", "", 4)
	registry.Add("Older", "", 4)

	NewIngestCatalogCommand(registry, nil).Execute([]domain.CatalogArtist{
		{Name: "New", AlbumCount: 1},
	})

	assert.False(t, registry.Has("Old"))
	n, ok := registry.Get("New")
	require.True(t, ok)
	assert.Equal(t, 0, n.ID)
}

func TestIngestCatalogCommand_SkipsBlankNames(t *testing.T) {
	registry := domain.NewRegistry()
	NewIngestCatalogCommand(registry, nopLogger).Execute([]domain.CatalogArtist{
		{Name: "   ", AlbumCount: 1},
		{Name: "Real", AlbumCount: 1},
	})

	assert.Equal(t, []string{"Real"}, registry.Names())
}
