package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	catalog "github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

type addOnTable map[string]catalog.AddOn

func (t addOnTable) AddOn(id string) (catalog.AddOn, bool) {
	a, ok := t[id]
	return a, ok
}

func mustProduct(t *testing.T, id, name, price, category string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, name, "", catalog.MustMoney(price), category, "")
	require.NoError(t, err)
	return p
}

func mustAddOn(t *testing.T, id, name, price string) catalog.AddOn {
	t.Helper()
	a, err := catalog.NewAddOn(id, name, catalog.MustMoney(price))
	require.NoError(t, err)
	return a
}

func testAddOns(t *testing.T) addOnTable {
	return addOnTable{
		"bacon":   mustAddOn(t, "bacon", "Bacon", "3.00"),
		"cheddar": mustAddOn(t, "cheddar", "Cheddar", "3.00"),
		"ovo":     mustAddOn(t, "ovo", "Ovo", "1.50"),
	}
}
