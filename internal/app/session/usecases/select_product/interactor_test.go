package select_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/data"
	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
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

func TestInteractor_OpensDialogForBurger(t *testing.T) {
	store, reducer, id := newFixture(t)
	it := NewInteractor(store, reducer)

	st, err := it.Execute(context.Background(), Request{SessionID: id, ProductID: "la-picanha"})
	require.NoError(t, err)
	require.NotNil(t, st.Dialog)
	assert.Equal(t, "la-picanha", st.Dialog.Product().ID())
	assert.Equal(t, 1, st.Dialog.Quantity())
	assert.True(t, st.Cart.IsEmpty())
}

func TestInteractor_BeverageGoesStraightToCart(t *testing.T) {
	store, reducer, id := newFixture(t)
	it := NewInteractor(store, reducer)

	st, err := it.Execute(context.Background(), Request{SessionID: id, ProductID: "coca-cola-lata"})
	require.NoError(t, err)
	assert.Nil(t, st.Dialog)
	assert.Equal(t, 1, st.Cart.ItemCount())
}

func TestInteractor_Errors(t *testing.T) {
	store, reducer, id := newFixture(t)
	it := NewInteractor(store, reducer)

	_, err := it.Execute(context.Background(), Request{SessionID: id, ProductID: "does-not-exist"})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	_, err = it.Execute(context.Background(), Request{SessionID: "nope", ProductID: "la-picanha"})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
