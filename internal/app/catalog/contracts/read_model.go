package contracts

import (
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

// ReadModel is the read side of the catalog used by queries.
// *domain.Catalog implements it.
type ReadModel interface {
	Product(id string) (*domain.Product, error)
	Menu(term string) []domain.Section
	AddOns() []domain.AddOn
	IsBeverage(p *domain.Product) bool
}
