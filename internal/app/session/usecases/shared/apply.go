// Package shared holds the plumbing every session usecase goes through.
package shared

import (
	"context"
	"fmt"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	contracts "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/contracts"
)

// Apply reduces actions onto the stored state of sessionID in a single
// store update and returns the new state.
func Apply(ctx context.Context, store contracts.SessionStore, reducer *session.Reducer, sessionID string, actions ...session.Action) (session.State, error) {
	if err := ctx.Err(); err != nil {
		return session.State{}, err
	}
	st, err := store.Update(sessionID, func(s session.State) session.State {
		return reducer.ReduceAll(s, actions...)
	})
	if err != nil {
		return session.State{}, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return st, nil
}
