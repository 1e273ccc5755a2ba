package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/catalog/domain"
)

func TestLoad_EmbeddedMenu(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Len(t, c.Categories(), 4)
	assert.Len(t, c.AddOns(), 11)
	assert.Len(t, c.Products(), 42)

	p, err := c.Product("la-picanha")
	require.NoError(t, err)
	assert.Equal(t, "La Picanha", p.Name())
	assert.Equal(t, "30.00", p.Price().String())
	assert.Equal(t, "burgers-artesanais", p.CategoryID())

	ovo, ok := c.AddOn("ovo")
	require.True(t, ok)
	assert.Equal(t, "1.50", ovo.Price.String())

	coke, err := c.Product("coca-cola-lata")
	require.NoError(t, err)
	assert.True(t, c.IsBeverage(coke))
}

func TestParse_RejectsBrokenMenus(t *testing.T) {
	_, err := Parse([]byte("categories: [::"), "")
	assert.Error(t, err)

	badPrice := []byte(`
categories:
  - id: tradicionais
    name: Tradicionais
products:
  - id: x
    name: X
    price: "abc"
    category: tradicionais
`)
	_, err = Parse(badPrice, "")
	assert.Error(t, err)

	orphan := []byte(`
categories:
  - id: tradicionais
    name: Tradicionais
products:
  - id: x
    name: X
    price: "1.00"
    category: bebidas
`)
	_, err = Parse(orphan, "")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}
