package select_product

import (
	"context"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	contracts "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/contracts"
	shared "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/shared"
)

// Request is a click on a menu card's add button.
type Request struct {
	SessionID string
	ProductID string
}

// Interactor opens the configuration dialog for a product, or adds a
// beverage to the cart straight away.
type Interactor struct {
	Store   contracts.SessionStore
	Reducer *session.Reducer
}

func NewInteractor(store contracts.SessionStore, reducer *session.Reducer) *Interactor {
	return &Interactor{Store: store, Reducer: reducer}
}

// Execute returns domain.ErrProductNotFound when the product is not on the menu.
func (it *Interactor) Execute(ctx context.Context, req Request) (session.State, error) {
	if _, err := it.Reducer.Catalog.Product(req.ProductID); err != nil {
		return session.State{}, err
	}
	return shared.Apply(ctx, it.Store, it.Reducer, req.SessionID, session.SelectProduct{ProductID: req.ProductID})
}
