package configure_item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/data"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session/usecases/select_product"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/pkg/clock"
)

func newFixture(t *testing.T) (*session.Store, *session.Reducer, string) {
	t.Helper()
	store := session.NewStore(clock.NewFake(time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)), time.Hour)
	reducer := session.NewReducer(data.MustLoad(""))
	id, _ := store.Create()
	return store, reducer, id
}

func open(t *testing.T, store *session.Store, reducer *session.Reducer, id, productID string) {
	t.Helper()
	_, err := select_product.NewInteractor(store, reducer).Execute(context.Background(),
		select_product.Request{SessionID: id, ProductID: productID})
	require.NoError(t, err)
}

func TestInteractor_EditsDialog(t *testing.T) {
	store, reducer, id := newFixture(t)
	open(t, store, reducer, id, "la-picanha")
	it := NewInteractor(store, reducer)

	_, err := it.Execute(context.Background(), Request{SessionID: id, ToggleAddOn: "bacon"})
	require.NoError(t, err)
	_, err = it.Execute(context.Background(), Request{SessionID: id, ToggleAddOn: "cheddar"})
	require.NoError(t, err)

	qty := 2
	obs := "sem cebola"
	st, err := it.Execute(context.Background(), Request{SessionID: id, Quantity: &qty, Observations: &obs})
	require.NoError(t, err)

	require.NotNil(t, st.Dialog)
	assert.Equal(t, 2, st.Dialog.Quantity())
	assert.Equal(t, "sem cebola", st.Dialog.Observations())
	assert.True(t, st.Dialog.IsSelected("bacon"))
	assert.Equal(t, "72.00", st.Dialog.Total().String())

	// Toggling again deselects.
	st, err = it.Execute(context.Background(), Request{SessionID: id, ToggleAddOn: "bacon"})
	require.NoError(t, err)
	assert.False(t, st.Dialog.IsSelected("bacon"))
	assert.Equal(t, "66.00", st.Dialog.Total().String())
}

func TestInteractor_QuantityIsClamped(t *testing.T) {
	store, reducer, id := newFixture(t)
	open(t, store, reducer, id, "x-burguer")
	it := NewInteractor(store, reducer)

	zero := 0
	st, err := it.Execute(context.Background(), Request{SessionID: id, Quantity: &zero})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Dialog.Quantity())
}

func TestInteractor_UnknownAddOnAndNoDialogAreNoOps(t *testing.T) {
	store, reducer, id := newFixture(t)
	it := NewInteractor(store, reducer)

	st, err := it.Execute(context.Background(), Request{SessionID: id, ToggleAddOn: "bacon"})
	require.NoError(t, err)
	assert.Nil(t, st.Dialog)

	open(t, store, reducer, id, "x-burguer")
	st, err = it.Execute(context.Background(), Request{SessionID: id, ToggleAddOn: "trufa"})
	require.NoError(t, err)
	assert.Empty(t, st.Dialog.SelectedAddOns())
}

func TestInteractor_Close(t *testing.T) {
	store, reducer, id := newFixture(t)
	open(t, store, reducer, id, "x-burguer")

	st, err := NewInteractor(store, reducer).Execute(context.Background(), Request{SessionID: id, Close: true})
	require.NoError(t, err)
	assert.Nil(t, st.Dialog)
	assert.True(t, st.Cart.IsEmpty())
}
