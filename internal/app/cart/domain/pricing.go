package domain

import (
	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

// UnitTotal returns the base price plus every add-on price, for one unit.
func UnitTotal(base catalog.Money, addOns []catalog.AddOn) catalog.Money {
	total := base
	for _, a := range addOns {
		total = total.Add(a.Price)
	}
	return total
}

// LineTotal returns (base + sum of add-on prices) * quantity.
// Add-ons are charged once per unit, so they scale with quantity too.
func LineTotal(base catalog.Money, addOns []catalog.AddOn, quantity int) catalog.Money {
	return UnitTotal(base, addOns).MultiplyByQuantity(quantity)
}
