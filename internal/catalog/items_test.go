package catalog_test

import (
	"testing"

	"github.com/baechu-app/gamify/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCatalog(t *testing.T) {
	items := catalog.Items()
	require.Equal(t, 50, catalog.CatalogSize())
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate item id %s", it.ID)
		seen[it.ID] = true
		assert.NotEmpty(t, it.Name)
		assert.NotEmpty(t, it.Category)
	}
}

func TestItemByID(t *testing.T) {
	it, ok := catalog.ItemByID("kkakdugi")
	require.True(t, ok)
	assert.Equal(t, "Kkakdugi", it.Name)
	_, ok = catalog.ItemByID("pizza")
	assert.False(t, ok)
}
