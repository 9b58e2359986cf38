package models

// Modifier is an optional add-on or variant with its own price adjustment
type Modifier struct {
	ID         string `bson:"_id" json:"id"`
	Name       string `bson:"name" json:"name"`
	PriceDelta int    `bson:"price_delta" json:"price_delta"`
}

// MenuItem represents one orderable item of the menu
type MenuItem struct {
	ID               string   `bson:"_id" json:"id"`
	Category         string   `bson:"category" json:"category"`
	Name             string   `bson:"name" json:"name"`
	Price            int      `bson:"price" json:"price"`
	AllowedModifiers []string `bson:"allowed_modifiers" json:"allowed_modifiers"`
}

// Allows reports whether modifierID is in the item's allowed list
func (m MenuItem) Allows(modifierID string) bool {
	for _, id := range m.AllowedModifiers {
		if id == modifierID {
			return true
		}
	}
	return false
}

func (m MenuItem) clone() MenuItem {
	if m.AllowedModifiers != nil {
		m.AllowedModifiers = append([]string(nil), m.AllowedModifiers...)
	}
	return m
}
