package domain

import (
	"fmt"
)

// DefaultBeverageCategory is the category whose products skip add-on configuration.
const DefaultBeverageCategory = "bebidas"

// Section is one category of the menu with the products shown under it.
type Section struct {
	Category Category
	Products []*Product
}

// Catalog is the read-only menu: ordered categories, ordered products and
// the global add-on list.
type Catalog struct {
	categories []Category
	products   []*Product
	addOns     []AddOn

	productsByID map[string]*Product
	addOnsByID   map[string]AddOn
	categoryIDs  map[string]struct{}

	beverageCategory string
}

// NewCatalog indexes the given entries. Product category references must
// resolve and ids must be unique per kind.
func NewCatalog(categories []Category, addOns []AddOn, products []*Product, beverageCategory string) (*Catalog, error) {
	if beverageCategory == "" {
		beverageCategory = DefaultBeverageCategory
	}

	c := &Catalog{
		categories:       append([]Category(nil), categories...),
		products:         append([]*Product(nil), products...),
		addOns:           append([]AddOn(nil), addOns...),
		productsByID:     make(map[string]*Product, len(products)),
		addOnsByID:       make(map[string]AddOn, len(addOns)),
		categoryIDs:      make(map[string]struct{}, len(categories)),
		beverageCategory: beverageCategory,
	}

	for _, cat := range categories {
		if _, dup := c.categoryIDs[cat.ID]; dup {
			return nil, fmt.Errorf("category %q: %w", cat.ID, ErrDuplicateID)
		}
		c.categoryIDs[cat.ID] = struct{}{}
	}
	for _, a := range addOns {
		if _, dup := c.addOnsByID[a.ID]; dup {
			return nil, fmt.Errorf("add-on %q: %w", a.ID, ErrDuplicateID)
		}
		c.addOnsByID[a.ID] = a
	}
	for _, p := range products {
		if _, dup := c.productsByID[p.ID()]; dup {
			return nil, fmt.Errorf("product %q: %w", p.ID(), ErrDuplicateID)
		}
		if _, ok := c.categoryIDs[p.CategoryID()]; !ok {
			return nil, fmt.Errorf("product %q category %q: %w", p.ID(), p.CategoryID(), ErrUnknownCategory)
		}
		c.productsByID[p.ID()] = p
	}

	return c, nil
}

// Product returns the product with the given id.
func (c *Catalog) Product(id string) (*Product, error) {
	p, ok := c.productsByID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// AddOn returns the add-on with the given id.
func (c *Catalog) AddOn(id string) (AddOn, bool) {
	a, ok := c.addOnsByID[id]
	return a, ok
}

// Categories returns the categories in menu order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Products returns all products in menu order.
func (c *Catalog) Products() []*Product {
	return append([]*Product(nil), c.products...)
}

// AddOns returns the add-ons in menu order.
func (c *Catalog) AddOns() []AddOn {
	return append([]AddOn(nil), c.addOns...)
}

// IsBeverage reports whether p belongs to the beverage category.
func (c *Catalog) IsBeverage(p *Product) bool {
	return p != nil && p.CategoryID() == c.beverageCategory
}

// Filter returns the products matching term in menu order.
func (c *Catalog) Filter(term string) []*Product {
	out := make([]*Product, 0, len(c.products))
	for _, p := range c.products {
		if p.Matches(term) {
			out = append(out, p)
		}
	}
	return out
}

// Menu groups the products matching term by category, in category order.
// Categories left without products are omitted.
func (c *Catalog) Menu(term string) []Section {
	matched := c.Filter(term)
	sections := make([]Section, 0, len(c.categories))
	for _, cat := range c.categories {
		var ps []*Product
		for _, p := range matched {
			if p.CategoryID() == cat.ID {
				ps = append(ps, p)
			}
		}
		if len(ps) == 0 {
			continue
		}
		sections = append(sections, Section{Category: cat, Products: ps})
	}
	return sections
}
