package dto

import (
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

// ProductDTO contains the product fields shown on a menu card.
// Price is a decimal string with two places.
type ProductDTO struct {
	ProductID   string
	Name        string
	Description string
	CategoryID  string
	Image       string
	Price       string

	// Beverage products are added straight to the cart without configuration.
	Beverage bool
}

// AddOnDTO is one optional extra.
type AddOnDTO struct {
	AddOnID string
	Name    string
	Price   string
}

// MenuSectionDTO is one category heading with its products.
type MenuSectionDTO struct {
	CategoryID string
	Name       string
	Products   []*ProductDTO
}

// MenuDTO is the full storefront listing.
type MenuDTO struct {
	Sections []*MenuSectionDTO
	AddOns   []*AddOnDTO
}

// FromProduct maps a domain product.
func FromProduct(p *domain.Product, beverage bool) *ProductDTO {
	return &ProductDTO{
		ProductID:   p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		CategoryID:  p.CategoryID(),
		Image:       p.Image(),
		Price:       p.Price().FloatString(2),
		Beverage:    beverage,
	}
}

// FromAddOn maps a domain add-on.
func FromAddOn(a domain.AddOn) *AddOnDTO {
	return &AddOnDTO{AddOnID: a.ID, Name: a.Name, Price: a.Price.FloatString(2)}
}
