package configure_item

import (
	"context"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	contracts "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/contracts"
	shared "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/shared"
)

// Request edits the open product dialog. Only the set fields are applied,
// in field order. Close discards the dialog after the other edits.
type Request struct {
	SessionID    string
	ToggleAddOn  string
	Quantity     *int
	Observations *string
	Close        bool
}

type Interactor struct {
	Store   contracts.SessionStore
	Reducer *session.Reducer
}

func NewInteractor(store contracts.SessionStore, reducer *session.Reducer) *Interactor {
	return &Interactor{Store: store, Reducer: reducer}
}

// Execute applies the edits. With no dialog open every edit is a no-op.
func (it *Interactor) Execute(ctx context.Context, req Request) (session.State, error) {
	var actions []session.Action
	if req.ToggleAddOn != "" {
		actions = append(actions, session.ToggleAddOn{AddOnID: req.ToggleAddOn})
	}
	if req.Quantity != nil {
		actions = append(actions, session.SetQuantity{Quantity: *req.Quantity})
	}
	if req.Observations != nil {
		actions = append(actions, session.SetObservations{Text: *req.Observations})
	}
	if req.Close {
		actions = append(actions, session.CloseDialog{})
	}
	return shared.Apply(ctx, it.Store, it.Reducer, req.SessionID, actions...)
}
