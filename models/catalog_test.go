package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, []string{"Burgers", "Drinks", "Snacks"}, catalog.Categories())
	assert.Equal(t, "Banner.jpg", catalog.Banner())

	items, ok := catalog.Items("Drinks")
	require.True(t, ok)
	assert.Len(t, items, 5)
}

func TestCatalogLookup(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	category, item, ok := catalog.Lookup("MEGA BURGER")
	require.True(t, ok)
	assert.Equal(t, "Burgers", category)
	assert.Equal(t, "MEGABurger.png", item.Image)
	assert.InDelta(t, 40.0, item.Price, 1e-9)

	_, _, ok = catalog.Lookup("Rendang")
	assert.False(t, ok)
	assert.False(t, catalog.Has("Rendang"))
	assert.True(t, catalog.Has("Salad"))
}

func TestCatalogRejectsDuplicateNames(t *testing.T) {
	_, err := NewCatalog("Banner.jpg", []CatalogCategory{
		{Name: "Burgers", Items: []CatalogItem{{Name: "Salad", Image: "a.png", Price: 1}}},
		{Name: "Snacks", Items: []CatalogItem{{Name: "Salad", Image: "b.png", Price: 2}}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Salad")
}

func TestCatalogUnknownCategory(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	_, ok := catalog.Items("Desserts")
	assert.False(t, ok)
}
