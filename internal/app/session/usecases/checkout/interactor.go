package checkout

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain/services"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	contracts "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/contracts"
)

type Request struct {
	SessionID string
}

// Result is the handoff to the restaurant. When Sent is false the cart was
// empty and URL and Message are blank.
type Result struct {
	Sent    bool
	URL     string
	Message string
	State   session.State
}

// Interactor renders the cart as an order message and builds the link that
// delivers it.
type Interactor struct {
	Store     contracts.SessionStore
	Formatter *services.OrderFormatter
	Link      contracts.HandoffLink
	Logger    *zap.Logger

	// ClearOnCheckout empties the cart once the link is built.
	ClearOnCheckout bool
}

func NewInteractor(store contracts.SessionStore, formatter *services.OrderFormatter, link contracts.HandoffLink, logger *zap.Logger, clearOnCheckout bool) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		Store:           store,
		Formatter:       formatter,
		Link:            link,
		Logger:          logger,
		ClearOnCheckout: clearOnCheckout,
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var res Result
	st, err := it.Store.Update(req.SessionID, func(s session.State) session.State {
		if s.Cart == nil || s.Cart.IsEmpty() {
			return s
		}
		res.Message = it.Formatter.FormatCart(s.Cart)
		res.URL = it.Link.URL(res.Message)
		res.Sent = true

		it.Logger.Info("order handed off",
			zap.String("session_id", req.SessionID),
			zap.Int("entries", s.Cart.Len()),
			zap.Int("items", s.Cart.ItemCount()),
			zap.String("total", s.Cart.Total().FloatString(2)),
		)

		if !it.ClearOnCheckout {
			return s
		}
		next := s.Clone()
		next.Cart.Clear()
		next.CartOpen = false
		return next
	})
	if err != nil {
		return Result{}, fmt.Errorf("session %s: %w", req.SessionID, err)
	}

	if !res.Sent {
		it.Logger.Debug("checkout of empty cart ignored", zap.String("session_id", req.SessionID))
	}
	res.State = st
	return res, nil
}
