// Package session holds the per-visitor storefront state and the pure
// transitions that change it.
package session

import (
	cart "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain"
	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

// State is everything one storefront visitor has changed: the cart, the
// search box, whether the cart panel is open, and the product dialog.
// Dialog is nil when no product is being configured.
//
// A State handed out by Reduce or the Store must be treated as read-only.
type State struct {
	Cart       *cart.Cart
	SearchTerm string
	CartOpen   bool
	Dialog     *cart.Configurator
}

// New returns the state of a fresh session: empty cart, no search, no dialog.
func New(ids cart.IDGenerator) State {
	return State{Cart: cart.NewCart(ids)}
}

// Clone deep-copies the mutable parts of s.
func (s State) Clone() State {
	out := s
	if s.Cart != nil {
		out.Cart = s.Cart.Clone()
	} else {
		out.Cart = cart.NewCart(nil)
	}
	if s.Dialog != nil {
		out.Dialog = s.Dialog.Clone()
	}
	return out
}

// Action is a single user interaction.
type Action interface {
	isAction()
}

type (
	SetSearch  struct{ Term string }
	ToggleCart struct{}
	// SelectProduct is the "Adicionar" button on a menu card.
	SelectProduct     struct{ ProductID string }
	ToggleAddOn       struct{ AddOnID string }
	SetQuantity       struct{ Quantity int }
	IncrementQuantity struct{}
	DecrementQuantity struct{}
	SetObservations   struct{ Text string }
	CloseDialog       struct{}
	CommitDialog      struct{}
	IncrementItem     struct{ ItemID string }
	DecrementItem     struct{ ItemID string }
	RemoveItem        struct{ ItemID string }
	ClearCart         struct{}
)

func (SetSearch) isAction()         {}
func (ToggleCart) isAction()        {}
func (SelectProduct) isAction()     {}
func (ToggleAddOn) isAction()       {}
func (SetQuantity) isAction()       {}
func (IncrementQuantity) isAction() {}
func (DecrementQuantity) isAction() {}
func (SetObservations) isAction()   {}
func (CloseDialog) isAction()       {}
func (CommitDialog) isAction()      {}
func (IncrementItem) isAction()     {}
func (DecrementItem) isAction()     {}
func (RemoveItem) isAction()        {}
func (ClearCart) isAction()         {}

// Reducer applies actions against a catalog.
type Reducer struct {
	Catalog *catalog.Catalog
}

func NewReducer(c *catalog.Catalog) *Reducer {
	return &Reducer{Catalog: c}
}

// Reduce returns the state after action. s is never modified. Actions that
// reference unknown products, add-ons or cart entries, and dialog actions
// with no dialog open, leave the state unchanged.
func (r *Reducer) Reduce(s State, action Action) State {
	next := s.Clone()

	switch a := action.(type) {
	case SetSearch:
		next.SearchTerm = a.Term

	case ToggleCart:
		next.CartOpen = !next.CartOpen

	case SelectProduct:
		p, err := r.Catalog.Product(a.ProductID)
		if err != nil {
			return next
		}
		// Beverages carry no add-ons, so they skip the dialog entirely.
		if r.Catalog.IsBeverage(p) {
			next.Cart.Add(cart.NewLineItem(p, 1, nil, ""))
			return next
		}
		next.Dialog = cart.NewConfigurator(p, r.Catalog)

	case ToggleAddOn:
		if next.Dialog != nil {
			next.Dialog.ToggleAddOn(a.AddOnID)
		}

	case SetQuantity:
		if next.Dialog != nil {
			next.Dialog.SetQuantity(a.Quantity)
		}

	case IncrementQuantity:
		if next.Dialog != nil {
			next.Dialog.Increment()
		}

	case DecrementQuantity:
		if next.Dialog != nil {
			next.Dialog.Decrement()
		}

	case SetObservations:
		if next.Dialog != nil {
			next.Dialog.SetObservations(a.Text)
		}

	case CloseDialog:
		next.Dialog = nil

	case CommitDialog:
		if next.Dialog != nil {
			next.Dialog.Commit(next.Cart)
			next.Dialog = nil
		}

	case IncrementItem:
		next.Cart.Increment(a.ItemID)

	case DecrementItem:
		next.Cart.Decrement(a.ItemID)

	case RemoveItem:
		next.Cart.Remove(a.ItemID)

	case ClearCart:
		next.Cart.Clear()
	}

	return next
}

// ReduceAll applies actions in order.
func (r *Reducer) ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = r.Reduce(s, a)
	}
	return s
}
