package models

// OrderLine represents one entry of the cart
type OrderLine struct {
	Item      MenuItem   `json:"item"`
	Modifiers []Modifier `json:"modifiers"`
	Quantity  int        `json:"quantity"`
}

// Subtotal is the price contribution of the line
func (l OrderLine) Subtotal() int {
	return ComputeSubtotal(l.Item, l.Modifiers, l.Quantity)
}

// ModifierNames returns the display names of the chosen modifiers in order
func (l OrderLine) ModifierNames() []string {
	names := make([]string, 0, len(l.Modifiers))
	for _, mod := range l.Modifiers {
		names = append(names, mod.Name)
	}
	return names
}

// Cart is an append-only, ordered list of order lines
type Cart struct {
	lines []OrderLine
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddLine appends a new line to the end of the cart
func (c *Cart) AddLine(item MenuItem, modifiers []Modifier, quantity int) OrderLine {
	line := OrderLine{
		Item:      item.clone(),
		Modifiers: append([]Modifier(nil), modifiers...),
		Quantity:  quantity,
	}
	c.lines = append(c.lines, line)
	return line
}

// Lines returns a snapshot of the lines in insertion order
func (c *Cart) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// GrandTotal sums the subtotals of every line
func (c *Cart) GrandTotal() int {
	total := 0
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether nothing has been added yet
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
