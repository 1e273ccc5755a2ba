package decrement_item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/data"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/pkg/clock"
)

func newFixture(t *testing.T) (*session.Store, *session.Reducer, string) {
	t.Helper()
	store := session.NewStore(clock.NewFake(time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)), time.Hour)
	reducer := session.NewReducer(data.MustLoad(""))
	id, _ := store.Create()
	return store, reducer, id
}

func seed(t *testing.T, store *session.Store, reducer *session.Reducer, id string) session.State {
	t.Helper()
	st, err := store.Update(id, func(s session.State) session.State {
		return reducer.ReduceAll(s,
			session.SelectProduct{ProductID: "x-burguer"},
			session.SetQuantity{Quantity: 2},
			session.CommitDialog{},
			session.SelectProduct{ProductID: "la-picanha"},
			session.ToggleAddOn{AddOnID: "bacon"},
			session.CommitDialog{},
		)
	})
	require.NoError(t, err)
	require.Equal(t, 2, st.Cart.Len())
	return st
}

func TestInteractor_DecrementsThenRemoves(t *testing.T) {
	store, reducer, id := newFixture(t)
	before := seed(t, store, reducer, id)
	bare := before.Cart.Items()[0]
	it := NewInteractor(store, reducer)

	st, err := it.Execute(context.Background(), Request{SessionID: id, ItemID: bare.ID})
	require.NoError(t, err)
	got, ok := st.Cart.Find(bare.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, "14.00", got.TotalPrice().String())

	st, err = it.Execute(context.Background(), Request{SessionID: id, ItemID: bare.ID})
	require.NoError(t, err)
	_, ok = st.Cart.Find(bare.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Cart.Len())
	assert.Equal(t, "33.00", st.Cart.Total().String())

	// The entry is gone; a repeated click changes nothing.
	st, err = it.Execute(context.Background(), Request{SessionID: id, ItemID: bare.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Cart.Len())
}
