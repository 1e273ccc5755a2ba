package domain

import (
	"strings"
)

// Category is a grouping label for products on the menu.
type Category struct {
	ID   string
	Name string
}

// NewCategory creates a Category, trimming surrounding whitespace.
func NewCategory(id, name string) (Category, error) {
	if err := validateID(id); err != nil {
		return Category{}, err
	}
	if err := validateName(name); err != nil {
		return Category{}, err
	}
	return Category{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name)}, nil
}

// AddOn is an optional paid extra. Add-ons are global, not scoped to a product.
type AddOn struct {
	ID    string
	Name  string
	Price Money
}

// NewAddOn creates an AddOn with a non-negative unit price.
func NewAddOn(id, name string, price Money) (AddOn, error) {
	if err := validateID(id); err != nil {
		return AddOn{}, err
	}
	if err := validateName(name); err != nil {
		return AddOn{}, err
	}
	if err := validatePrice(price); err != nil {
		return AddOn{}, err
	}
	return AddOn{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name), Price: price}, nil
}

// Product is a catalog entry. It is loaded once at startup and never mutated.
type Product struct {
	id          string
	name        string
	description string
	price       Money
	categoryID  string
	image       string
}

// NewProduct creates a new Product with the given details.
func NewProduct(id, name, description string, price Money, categoryID, image string) (*Product, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(categoryID) == "" {
		return nil, ErrEmptyProductCategory
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		id:          strings.TrimSpace(id),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		price:       price,
		categoryID:  strings.TrimSpace(categoryID),
		image:       strings.TrimSpace(image),
	}, nil
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() Money {
	return p.price
}

func (p *Product) CategoryID() string {
	return p.categoryID
}

func (p *Product) Image() string {
	return p.image
}

// Matches reports whether term occurs in the product name or description,
// ignoring case. An empty term matches every product.
func (p *Product) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.name), term) ||
		strings.Contains(strings.ToLower(p.description), term)
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	return nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if len(trimmed) > 255 {
		return ErrNameTooLong
	}
	return nil
}

func validatePrice(price Money) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
