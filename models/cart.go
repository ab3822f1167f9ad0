package models

import "fmt"

// CartLine is one (item, quantity) pair of a cart.
type CartLine struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Cart maps item names to quantities and remembers insertion order, so the
// sidebar, the review table and the order file all list lines in the order
// the customer picked them. Stored quantities are always >= 1: a line is
// removed whole, never kept at zero.
type Cart struct {
	quantities map[string]int
	order      []string
}

func NewCart() *Cart {
	return &Cart{quantities: make(map[string]int)}
}

// Add puts one more of the item in the cart, inserting the line at the end
// when the item is new. Re-adding a previously removed item appends again.
func (c *Cart) Add(name string) int {
	if _, ok := c.quantities[name]; !ok {
		c.order = append(c.order, name)
	}
	c.quantities[name]++
	return c.quantities[name]
}

// Remove deletes the whole line regardless of quantity. It reports whether
// the item was in the cart.
func (c *Cart) Remove(name string) bool {
	if _, ok := c.quantities[name]; !ok {
		return false
	}
	delete(c.quantities, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.quantities = make(map[string]int)
	c.order = nil
}

// Quantity returns the quantity of an item, 0 when absent.
func (c *Cart) Quantity(name string) int {
	return c.quantities[name]
}

func (c *Cart) Len() int {
	return len(c.order)
}

func (c *Cart) IsEmpty() bool {
	return len(c.order) == 0
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, 0, len(c.order))
	for _, name := range c.order {
		lines = append(lines, CartLine{Item: name, Quantity: c.quantities[name]})
	}
	return lines
}

// Total sums unit price times quantity over all lines. Items only enter the
// cart through catalog-checked adds, so a lookup miss here is an invariant
// violation, not a user error.
func (c *Cart) Total(catalog *Catalog) (float64, error) {
	var total float64
	for _, name := range c.order {
		_, item, ok := catalog.Lookup(name)
		if !ok {
			return 0, fmt.Errorf("cart item %q is not in the catalog", name)
		}
		total += item.Price * float64(c.quantities[name])
	}
	return total, nil
}
