package contracts

import (
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
)

// SessionStore is what the usecases need from session storage.
// *session.Store implements it.
type SessionStore interface {
	Get(id string) (session.State, error)
	Update(id string, fn func(session.State) session.State) (session.State, error)
}

// HandoffLink turns a finished order message into the link that opens the
// restaurant's messaging channel.
type HandoffLink interface {
	URL(message string) string
}
