package create_session

import (
	"context"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
)

// Creator is the part of the session store that opens sessions.
type Creator interface {
	Create() (string, session.State)
}

// Interactor opens a fresh storefront session.
type Interactor struct {
	Store Creator
}

func NewInteractor(store Creator) *Interactor {
	return &Interactor{Store: store}
}

// Execute returns the new session id and its empty state.
func (it *Interactor) Execute(ctx context.Context) (string, session.State, error) {
	if err := ctx.Err(); err != nil {
		return "", session.State{}, err
	}
	id, st := it.Store.Create()
	return id, st, nil
}
