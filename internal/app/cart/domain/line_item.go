package domain

import (
	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

// LineItem is one row of the cart: a quantity of a product plus the add-ons
// and notes chosen for it. Product fields are copied when the item is built,
// so later catalog changes never reach entries already in a cart.
type LineItem struct {
	ID string

	ProductID   string
	Name        string
	Description string
	CategoryID  string
	Image       string
	UnitPrice   catalog.Money

	Quantity     int
	AddOns       []catalog.AddOn
	Observations string
}

// NewLineItem snapshots p into an unidentified line item. The cart assigns
// the ID on Add. Quantity is clamped to at least 1.
func NewLineItem(p *catalog.Product, quantity int, addOns []catalog.AddOn, observations string) *LineItem {
	if quantity < 1 {
		quantity = 1
	}
	return &LineItem{
		ProductID:    p.ID(),
		Name:         p.Name(),
		Description:  p.Description(),
		CategoryID:   p.CategoryID(),
		Image:        p.Image(),
		UnitPrice:    p.Price(),
		Quantity:     quantity,
		AddOns:       append([]catalog.AddOn(nil), addOns...),
		Observations: observations,
	}
}

// IsBare reports whether the item has no add-ons and may therefore be merged.
func (li *LineItem) IsBare() bool {
	return len(li.AddOns) == 0
}

// UnitEffectivePrice is the price of one unit including its add-ons.
func (li *LineItem) UnitEffectivePrice() catalog.Money {
	return UnitTotal(li.UnitPrice, li.AddOns)
}

// TotalPrice is derived from the current quantity, never stored.
func (li *LineItem) TotalPrice() catalog.Money {
	return LineTotal(li.UnitPrice, li.AddOns, li.Quantity)
}

func (li *LineItem) clone() *LineItem {
	cp := *li
	cp.AddOns = append([]catalog.AddOn(nil), li.AddOns...)
	return &cp
}
