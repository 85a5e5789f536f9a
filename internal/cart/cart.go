package cart

import (
	"menu_orders/internal/models"
)

// LineItem is one merged cart entry: a product variation plus the set of
// selected ingredient ids. Product and variation data is carried by value
// so pricing needs no catalog lookups after the item is added.
type LineItem struct {
	Product             models.Product   `json:"product"`
	Variation           models.Variation `json:"variation"`
	Quantity            int              `json:"quantity"`
	SelectedIngredients []uint           `json:"selected_ingredients"`
	Notes               string           `json:"notes"`
}

// ExtrasCost sums extra_cost over ingredients that are both optional on
// the product and selected on this line. Non-optional ingredients never
// contribute, even if their id is in the selection.
func (li LineItem) ExtrasCost() float64 {
	cost := 0.0
	for _, ing := range li.Product.Ingredients {
		if !ing.Optional {
			continue
		}
		for _, id := range li.SelectedIngredients {
			if id == ing.ID {
				cost += ing.ExtraCost
				break
			}
		}
	}
	return cost
}

func (li LineItem) UnitPrice() float64 {
	return li.Variation.Price + li.ExtrasCost()
}

func (li LineItem) LineTotal() float64 {
	return li.UnitPrice() * float64(li.Quantity)
}

// Cart holds the line items for one browsing session. It is owned by a
// single session and is not safe for concurrent use.
type Cart struct {
	items     []LineItem
	lastAdded *LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges into an existing line when product, variation and
// selected-ingredient set all match, otherwise appends a new line. A nil
// selection defaults to the product's non-optional ingredients; optional
// ones are excluded unless explicitly selected. Quantities below 1 are
// treated as 1.
func (c *Cart) AddItem(product models.Product, variation models.Variation, quantity int, selectedIngredientIDs []uint, notes string) {
	if quantity < 1 {
		quantity = 1
	}
	if selectedIngredientIDs == nil {
		selectedIngredientIDs = defaultSelection(product)
	}
	selectedIngredientIDs = dedupe(selectedIngredientIDs)

	for i := range c.items {
		item := &c.items[i]
		if item.Product.ID == product.ID &&
			item.Variation.ID == variation.ID &&
			sameSelection(item.SelectedIngredients, selectedIngredientIDs) {
			item.Quantity += quantity
			c.rememberLastAdded(*item)
			return
		}
	}

	item := LineItem{
		Product:             product,
		Variation:           variation,
		Quantity:            quantity,
		SelectedIngredients: selectedIngredientIDs,
		Notes:               notes,
	}
	c.items = append(c.items, item)
	c.rememberLastAdded(item)
}

// RemoveItem drops every line matching the product+variation pair,
// regardless of ingredient selection. No-op when nothing matches.
func (c *Cart) RemoveItem(productID, variationID uint) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Product.ID == productID && item.Variation.ID == variationID {
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
}

// UpdateQuantity sets the quantity on the first matching line. A quantity
// of zero or less removes the pair entirely.
func (c *Cart) UpdateQuantity(productID, variationID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID, variationID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID && c.items[i].Variation.ID == variationID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
	c.lastAdded = nil
}

func (c *Cart) Items() []LineItem {
	return c.items
}

// Total is the sum of (variation price + selected optional extras) *
// quantity over all lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

// ItemCount is the summed quantity across lines, not the line count.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// LastAdded returns a copy of the most recently added or merged line, or
// nil if none since the last clear.
func (c *Cart) LastAdded() *LineItem {
	return c.lastAdded
}

func (c *Cart) ClearLastAdded() {
	c.lastAdded = nil
}

func (c *Cart) rememberLastAdded(item LineItem) {
	copied := item
	c.lastAdded = &copied
}

func defaultSelection(product models.Product) []uint {
	ids := []uint{}
	for _, ing := range product.Ingredients {
		if !ing.Optional {
			ids = append(ids, ing.ID)
		}
	}
	return ids
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// sameSelection compares two deduplicated id lists as sets, ignoring
// order.
func sameSelection(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uint]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}
