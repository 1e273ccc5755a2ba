package services

import (
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain"
	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

// PricingCalculator prices cart rows for display and for the order summary.
// Every figure it returns is derived from the row's frozen unit price and
// add-ons, never from the live catalog.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// LineTotal is (unit price + add-ons) * quantity for one row.
func (pc *PricingCalculator) LineTotal(item domain.LineItem) catalog.Money {
	return domain.LineTotal(item.UnitPrice, item.AddOns, item.Quantity)
}

// AddOnsTotal is the per-unit sum of the row's add-ons.
func (pc *PricingCalculator) AddOnsTotal(item domain.LineItem) catalog.Money {
	return domain.UnitTotal(catalog.Zero(), item.AddOns)
}

// CartTotal sums LineTotal over items.
func (pc *PricingCalculator) CartTotal(items []domain.LineItem) catalog.Money {
	total := catalog.Zero()
	for _, it := range items {
		total = total.Add(pc.LineTotal(it))
	}
	return total
}
