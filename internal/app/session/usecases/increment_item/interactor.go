package increment_item

import (
	"context"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	contracts "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/contracts"
	shared "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/shared"
)

// Request targets one cart entry. Unknown item ids leave the cart unchanged.
type Request struct {
	SessionID string
	ItemID    string
}

// Interactor adds one more unit of a cart entry.
type Interactor struct {
	Store   contracts.SessionStore
	Reducer *session.Reducer
}

func NewInteractor(store contracts.SessionStore, reducer *session.Reducer) *Interactor {
	return &Interactor{Store: store, Reducer: reducer}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (session.State, error) {
	return shared.Apply(ctx, it.Store, it.Reducer, req.SessionID, session.IncrementItem{ItemID: req.ItemID})
}
