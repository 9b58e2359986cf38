package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindItemByName(t *testing.T) {
	catalog := DefaultCatalog()

	item, err := catalog.FindItemByName("招牌飯糰")
	require.NoError(t, err)
	assert.Equal(t, "t01", item.ID)
	assert.Equal(t, 40, item.Price)
	assert.Equal(t, []string{"add_egg"}, item.AllowedModifiers)

	again, err := catalog.FindItemByName("招牌飯糰")
	require.NoError(t, err)
	assert.Equal(t, item, again)
}

func TestFindItemNotFound(t *testing.T) {
	catalog := DefaultCatalog()

	_, err := catalog.FindItemByName("咖啡")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "menu item", nf.Kind)
	assert.Equal(t, "咖啡", nf.Key)

	_, err = catalog.FindItemByID("zz9")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindModifierUnknownIsAbsent(t *testing.T) {
	catalog := DefaultCatalog()

	mod, ok := catalog.FindModifierByID("add_cheese")
	assert.True(t, ok)
	assert.Equal(t, 15, mod.PriceDelta)

	_, ok = catalog.FindModifierByID("add_bacon")
	assert.False(t, ok)
}

func TestAllowedModifiersSkipsUnknownIDs(t *testing.T) {
	catalog, err := NewCatalog(
		[]MenuItem{{ID: "x01", Category: "EATS", Name: "蘿蔔糕", Price: 35, AllowedModifiers: []string{"add_egg", "ghost", "add_cheese"}}},
		[]Modifier{{ID: "add_egg", Name: "加蛋", PriceDelta: 15}, {ID: "add_cheese", Name: "加起司", PriceDelta: 15}},
	)
	require.NoError(t, err)

	item, err := catalog.FindItemByID("x01")
	require.NoError(t, err)

	mods := catalog.AllowedModifiers(item)
	require.Len(t, mods, 2)
	assert.Equal(t, "add_egg", mods[0].ID)
	assert.Equal(t, "add_cheese", mods[1].ID)
}

func TestCatalogListings(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, []string{"非基改豆漿", "經典燒餅油條", "原味Q蛋餅", "招牌飯糰"}, catalog.ItemNames())
	assert.Equal(t, []string{"DRINKS", "ROLLS", "CREPES", "EATS"}, catalog.Categories())
	assert.Len(t, catalog.Items(), 4)
	assert.Empty(t, catalog.AllowedModifiers(catalog.Items()[1]))
}

func TestCatalogItemsAreCopies(t *testing.T) {
	catalog := DefaultCatalog()

	items := catalog.Items()
	items[0].AllowedModifiers[0] = "tampered"
	items[0].Price = 0

	item, err := catalog.FindItemByID("d01")
	require.NoError(t, err)
	assert.Equal(t, 25, item.Price)
	assert.Equal(t, "sugar_full", item.AllowedModifiers[0])
}

func TestNewCatalogRejectsBadData(t *testing.T) {
	tests := []struct {
		name  string
		items []MenuItem
		mods  []Modifier
	}{
		{"duplicate item id", []MenuItem{{ID: "a", Name: "A"}, {ID: "a", Name: "B"}}, nil},
		{"duplicate name", []MenuItem{{ID: "a", Name: "A"}, {ID: "b", Name: "A"}}, nil},
		{"missing item id", []MenuItem{{Name: "A"}}, nil},
		{"negative price", []MenuItem{{ID: "a", Name: "A", Price: -1}}, nil},
		{"duplicate modifier id", nil, []Modifier{{ID: "m"}, {ID: "m"}}},
		{"missing modifier id", nil, []Modifier{{Name: "M"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.items, tt.mods)
			assert.Error(t, err)
		})
	}
}
