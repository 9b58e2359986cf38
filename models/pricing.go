package models

// ComputeSubtotal prices one cart line: (base price + modifier deltas) * quantity.
// Quantity is validated by the caller.
func ComputeSubtotal(item MenuItem, modifiers []Modifier, quantity int) int {
	unit := item.Price
	for _, mod := range modifiers {
		unit += mod.PriceDelta
	}
	return unit * quantity
}
