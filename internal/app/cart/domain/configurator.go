package domain

import (
	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

// AddOnLookup resolves add-on ids. *catalog.Catalog satisfies it.
type AddOnLookup interface {
	AddOn(id string) (catalog.AddOn, bool)
}

// Configurator is the working selection for one product before it goes into
// the cart: quantity, chosen add-ons and free-text observations.
type Configurator struct {
	product      *catalog.Product
	addOns       AddOnLookup
	quantity     int
	selected     []string
	observations string
}

// NewConfigurator starts a selection with quantity 1, no add-ons and no notes.
func NewConfigurator(p *catalog.Product, addOns AddOnLookup) *Configurator {
	return &Configurator{product: p, addOns: addOns, quantity: 1}
}

// ToggleAddOn selects the add-on, or deselects it if already selected.
// Ids the catalog does not know are ignored.
func (c *Configurator) ToggleAddOn(id string) {
	if _, ok := c.addOns.AddOn(id); !ok {
		return
	}
	for i, sel := range c.selected {
		if sel == id {
			c.selected = append(c.selected[:i:i], c.selected[i+1:]...)
			return
		}
	}
	c.selected = append(c.selected, id)
}

// SetQuantity sets the quantity, holding it at 1 for anything lower.
func (c *Configurator) SetQuantity(q int) {
	if q < 1 {
		q = 1
	}
	c.quantity = q
}

func (c *Configurator) Increment() {
	c.SetQuantity(c.quantity + 1)
}

func (c *Configurator) Decrement() {
	c.SetQuantity(c.quantity - 1)
}

func (c *Configurator) SetObservations(s string) {
	c.observations = s
}

func (c *Configurator) Product() *catalog.Product {
	return c.product
}

func (c *Configurator) Quantity() int {
	return c.quantity
}

func (c *Configurator) Observations() string {
	return c.observations
}

// IsSelected reports whether the add-on is part of the current selection.
func (c *Configurator) IsSelected(id string) bool {
	for _, sel := range c.selected {
		if sel == id {
			return true
		}
	}
	return false
}

// SelectedAddOns resolves the selection in the order it was made.
func (c *Configurator) SelectedAddOns() []catalog.AddOn {
	out := make([]catalog.AddOn, 0, len(c.selected))
	for _, id := range c.selected {
		if a, ok := c.addOns.AddOn(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// Total is (product price + selected add-on prices) * quantity, computed
// from the current selection on every call.
func (c *Configurator) Total() catalog.Money {
	return LineTotal(c.product.Price(), c.SelectedAddOns(), c.quantity)
}

// Snapshot builds the line item the current selection describes.
func (c *Configurator) Snapshot() *LineItem {
	return NewLineItem(c.product, c.quantity, c.SelectedAddOns(), c.observations)
}

// Commit hands the snapshot to the cart and returns the resulting entry ID.
func (c *Configurator) Commit(cart *Cart) string {
	return cart.Add(c.Snapshot())
}

// Clone returns an independent copy of the selection.
func (c *Configurator) Clone() *Configurator {
	cp := *c
	cp.selected = append([]string(nil), c.selected...)
	return &cp
}
