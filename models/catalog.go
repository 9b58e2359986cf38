package models

import "fmt"

// Catalog holds the fixed menu and modifier set. It is built once and only read afterwards,
// so it is safe to share between sessions without locking.
type Catalog struct {
	items     []MenuItem
	itemsByID map[string]int
	idsByName map[string]string
	modifiers map[string]Modifier
}

// NewCatalog indexes items by id and by display name, and modifiers by id
func NewCatalog(items []MenuItem, modifiers []Modifier) (*Catalog, error) {
	c := &Catalog{
		items:     make([]MenuItem, 0, len(items)),
		itemsByID: make(map[string]int, len(items)),
		idsByName: make(map[string]string, len(items)),
		modifiers: make(map[string]Modifier, len(modifiers)),
	}

	for _, mod := range modifiers {
		if mod.ID == "" {
			return nil, fmt.Errorf("modifier %q has no id", mod.Name)
		}
		if _, dup := c.modifiers[mod.ID]; dup {
			return nil, fmt.Errorf("duplicate modifier id %q", mod.ID)
		}
		c.modifiers[mod.ID] = mod
	}

	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("menu item %q has no id", item.Name)
		}
		if _, dup := c.itemsByID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate menu item id %q", item.ID)
		}
		if other, dup := c.idsByName[item.Name]; dup {
			return nil, fmt.Errorf("menu items %q and %q share the name %q", other, item.ID, item.Name)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("menu item %q has a negative price", item.ID)
		}
		c.itemsByID[item.ID] = len(c.items)
		c.idsByName[item.Name] = item.ID
		c.items = append(c.items, item.clone())
	}

	return c, nil
}

// FindItemByName resolves a display name to its menu item
func (c *Catalog) FindItemByName(name string) (MenuItem, error) {
	id, ok := c.idsByName[name]
	if !ok {
		return MenuItem{}, &NotFoundError{Kind: "menu item", Key: name}
	}
	return c.FindItemByID(id)
}

// FindItemByID resolves an item id
func (c *Catalog) FindItemByID(id string) (MenuItem, error) {
	idx, ok := c.itemsByID[id]
	if !ok {
		return MenuItem{}, &NotFoundError{Kind: "menu item", Key: id}
	}
	return c.items[idx].clone(), nil
}

// FindModifierByID returns false for unknown ids. Unknown ids are not an error.
func (c *Catalog) FindModifierByID(id string) (Modifier, bool) {
	mod, ok := c.modifiers[id]
	return mod, ok
}

// AllowedModifiers resolves the item's allowed modifier ids in order.
// Ids with no modifier definition are skipped.
func (c *Catalog) AllowedModifiers(item MenuItem) []Modifier {
	mods := make([]Modifier, 0, len(item.AllowedModifiers))
	for _, id := range item.AllowedModifiers {
		if mod, ok := c.FindModifierByID(id); ok {
			mods = append(mods, mod)
		}
	}
	return mods
}

// Items returns the menu in display order
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.clone())
	}
	return out
}

// ItemNames returns the display names in menu order
func (c *Catalog) ItemNames() []string {
	names := make([]string, 0, len(c.items))
	for _, item := range c.items {
		names = append(names, item.Name)
	}
	return names
}

// Categories returns the distinct categories in order of first appearance
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range c.items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
