package models

// DefaultModifiers is the modifier set of the breakfast shop
var DefaultModifiers = []Modifier{
	{ID: "sugar_full", Name: "全糖", PriceDelta: 0},
	{ID: "sugar_half", Name: "半糖", PriceDelta: 0},
	{ID: "sugar_no", Name: "無糖", PriceDelta: 0},
	{ID: "temp_ice", Name: "冰", PriceDelta: 0},
	{ID: "temp_hot", Name: "熱", PriceDelta: 0},
	{ID: "add_egg", Name: "加蛋", PriceDelta: 15},
	{ID: "add_cheese", Name: "加起司", PriceDelta: 15},
}

// DefaultMenu is the menu of the breakfast shop
var DefaultMenu = []MenuItem{
	{ID: "d01", Category: "DRINKS", Name: "非基改豆漿", Price: 25, AllowedModifiers: []string{"sugar_full", "sugar_half", "sugar_no", "temp_ice", "temp_hot"}},
	{ID: "c01", Category: "ROLLS", Name: "經典燒餅油條", Price: 40},
	{ID: "e01", Category: "CREPES", Name: "原味Q蛋餅", Price: 30, AllowedModifiers: []string{"add_cheese"}},
	{ID: "t01", Category: "EATS", Name: "招牌飯糰", Price: 40, AllowedModifiers: []string{"add_egg"}},
}

// DefaultCatalog builds the catalog from the built-in menu
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(DefaultMenu, DefaultModifiers)
	if err != nil {
		panic(err)
	}
	return catalog
}
