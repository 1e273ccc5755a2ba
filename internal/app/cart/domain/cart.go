package domain

import (
	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

// Cart is the ordered list of line items for one session.
// Insertion order is kept; it drives the order summary.
type Cart struct {
	items []*LineItem
	ids   IDGenerator
}

// NewCart creates an empty cart. A nil generator defaults to a SequenceGenerator.
func NewCart(ids IDGenerator) *Cart {
	if ids == nil {
		ids = NewSequenceGenerator("")
	}
	return &Cart{ids: ids}
}

// Add puts entry into the cart and returns the ID of the entry that now holds it.
//
// An entry with add-ons is always appended as its own row. A bare entry is
// folded into the first bare row of the same product, if any, by adding its
// quantity; every other field of that row is kept as first inserted.
func (c *Cart) Add(entry *LineItem) string {
	if entry == nil {
		return ""
	}
	qty := entry.Quantity
	if qty < 1 {
		qty = 1
	}

	if entry.IsBare() {
		if existing := c.findBare(entry.ProductID); existing != nil {
			existing.Quantity += qty
			return existing.ID
		}
	}

	item := entry.clone()
	item.Quantity = qty
	if item.ID == "" || c.indexOf(item.ID) >= 0 {
		item.ID = c.ids.NextID()
	}
	c.items = append(c.items, item)
	return item.ID
}

// Increment adds one more unit of the entry with the given ID, routed through
// Add: bare entries merge, entries with add-ons get a new quantity-1 row.
// Unknown IDs are ignored and return "".
func (c *Cart) Increment(id string) string {
	i := c.indexOf(id)
	if i < 0 {
		return ""
	}
	unit := c.items[i].clone()
	unit.ID = ""
	unit.Quantity = 1
	return c.Add(unit)
}

// Decrement removes one unit of the entry, dropping the entry at quantity 1.
// It reports whether anything changed; unknown IDs are a no-op.
func (c *Cart) Decrement(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	if c.items[i].Quantity > 1 {
		c.items[i].Quantity--
		return true
	}
	c.removeAt(i)
	return true
}

// Remove drops the entry regardless of quantity. Unknown IDs are a no-op.
func (c *Cart) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

// Total is the sum of every entry's total price.
func (c *Cart) Total() catalog.Money {
	total := catalog.Zero()
	for _, it := range c.items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

// ItemCount is the sum of quantities, not the number of rows.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Len is the number of rows.
func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns copies of the rows in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, it := range c.items {
		out[i] = *it.clone()
	}
	return out
}

// Find returns a copy of the entry with the given ID.
func (c *Cart) Find(id string) (LineItem, bool) {
	i := c.indexOf(id)
	if i < 0 {
		return LineItem{}, false
	}
	return *c.items[i].clone(), true
}

// Clear empties the cart. Identities already issued are not reused.
func (c *Cart) Clear() {
	c.items = nil
}

// Clone returns an independent copy sharing the ID generator, so entries
// added to either copy never collide.
func (c *Cart) Clone() *Cart {
	cp := &Cart{ids: c.ids, items: make([]*LineItem, len(c.items))}
	for i, it := range c.items {
		cp.items[i] = it.clone()
	}
	return cp
}

func (c *Cart) findBare(productID string) *LineItem {
	for _, it := range c.items {
		if it.ProductID == productID && it.IsBare() {
			return it
		}
	}
	return nil
}

func (c *Cart) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.items = append(c.items[:i], c.items[i+1:]...)
}
