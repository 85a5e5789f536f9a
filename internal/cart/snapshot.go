package cart

// Snapshot is the serializable form of a cart, cached per browsing
// session between requests. Lines carry their own pricing inputs, so
// restoring needs no catalog access.
type Snapshot struct {
	Items []LineItem `json:"items"`
}

func (c *Cart) Snapshot() Snapshot {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return Snapshot{Items: items}
}

func FromSnapshot(s Snapshot) *Cart {
	c := NewCart()
	c.items = make([]LineItem, len(s.Items))
	copy(c.items, s.Items)
	return c
}
