package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain/services"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/data"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/session"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/pkg/clock"
	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/pkg/handoff"
)

type fixture struct {
	store   *session.Store
	reducer *session.Reducer
	id      string
	logs    *observer.ObservedLogs
	logger  *zap.Logger
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	store := session.NewStore(clock.NewFake(time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)), time.Hour)
	id, _ := store.Create()
	return fixture{
		store:   store,
		reducer: session.NewReducer(data.MustLoad("")),
		id:      id,
		logs:    logs,
		logger:  zap.New(core),
	}
}

func (f fixture) fill(t *testing.T) {
	t.Helper()
	_, err := f.store.Update(f.id, func(s session.State) session.State {
		return f.reducer.ReduceAll(s,
			session.SelectProduct{ProductID: "x-burguer"},
			session.SetQuantity{Quantity: 2},
			session.CommitDialog{},
			session.SelectProduct{ProductID: "la-picanha"},
			session.ToggleAddOn{AddOnID: "bacon"},
			session.ToggleAddOn{AddOnID: "cheddar"},
			session.SetObservations{Text: "sem cebola"},
			session.CommitDialog{},
		)
	})
	require.NoError(t, err)
}

func (f fixture) interactor(clear bool) *Interactor {
	return NewInteractor(f.store, services.NewOrderFormatter("", ""), handoff.NewWhatsApp("", ""), f.logger, clear)
}

func TestInteractor_HandsOffOrder(t *testing.T) {
	f := newFixture(t)
	f.fill(t)

	res, err := f.interactor(false).Execute(context.Background(), Request{SessionID: f.id})
	require.NoError(t, err)

	assert.True(t, res.Sent)
	assert.Contains(t, res.Message, "*1. X-Burguer* (2x)\n   💰 R$ 28.00\n")
	assert.Contains(t, res.Message, "   • Bacon (+R$ 3.00)\n   • Cheddar (+R$ 3.00)\n   📝 *Obs:* sem cebola\n")
	assert.Contains(t, res.Message, "*TOTAL: R$ 64.00*\n\n")
	assert.True(t, strings.HasPrefix(res.URL, "https://wa.me/5528992546359?text="))
	assert.NotContains(t, res.URL, " ")
	assert.NotContains(t, res.URL, "+")

	// Cart is kept unless configured otherwise.
	assert.Equal(t, 2, res.State.Cart.Len())

	entries := f.logs.FilterMessage("order handed off").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "64.00", entries[0].ContextMap()["total"])
	assert.Equal(t, f.id, entries[0].ContextMap()["session_id"])
}

func TestInteractor_SameCartSameMessage(t *testing.T) {
	f := newFixture(t)
	f.fill(t)
	it := f.interactor(false)

	first, err := it.Execute(context.Background(), Request{SessionID: f.id})
	require.NoError(t, err)
	second, err := it.Execute(context.Background(), Request{SessionID: f.id})
	require.NoError(t, err)

	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, first.URL, second.URL)
}

func TestInteractor_ClearOnCheckout(t *testing.T) {
	f := newFixture(t)
	f.fill(t)

	res, err := f.interactor(true).Execute(context.Background(), Request{SessionID: f.id})
	require.NoError(t, err)
	assert.True(t, res.Sent)
	assert.True(t, res.State.Cart.IsEmpty())

	st, err := f.store.Get(f.id)
	require.NoError(t, err)
	assert.True(t, st.Cart.IsEmpty())
}

func TestInteractor_EmptyCartIsNoOp(t *testing.T) {
	f := newFixture(t)

	res, err := f.interactor(true).Execute(context.Background(), Request{SessionID: f.id})
	require.NoError(t, err)
	assert.False(t, res.Sent)
	assert.Empty(t, res.URL)
	assert.Empty(t, res.Message)
	assert.Zero(t, f.logs.FilterMessage("order handed off").Len())
}

func TestInteractor_UnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.interactor(false).Execute(context.Background(), Request{SessionID: "gone"})
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
