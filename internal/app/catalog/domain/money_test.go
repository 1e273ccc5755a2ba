package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_RepeatedAdditionDoesNotDrift(t *testing.T) {
	m := Zero()
	tenCents := NewMoneyFromCents(10)
	for i := 0; i < 1000; i++ {
		m = m.Add(tenCents)
	}

	assert.Equal(t, "100.00", m.String())
	assert.Equal(t, int64(10000), m.Cents())
}

func TestMoney_FromDecimal(t *testing.T) {
	m, err := NewMoneyFromDecimal("1.5")
	require.NoError(t, err)

	assert.Equal(t, "1.50", m.String())
	assert.True(t, m.Equals(NewMoneyFromCents(150)))

	_, err = NewMoneyFromDecimal("R$ 3,00")
	assert.Error(t, err)
}

func TestMoney_MultiplyByQuantity(t *testing.T) {
	price := MustMoney("14.00")

	assert.Equal(t, "28.00", price.MultiplyByQuantity(2).String())
	assert.True(t, price.MultiplyByQuantity(0).IsZero())
}

func TestMoney_FloatStringHasNoGrouping(t *testing.T) {
	m := NewMoneyFromCents(123456789)

	assert.Equal(t, "1234567.89", m.FloatString(2))
}

func TestMoney_Subtract(t *testing.T) {
	m := MustMoney("3.00").Subtract(MustMoney("4.50"))

	assert.True(t, m.IsNegative())
	assert.Equal(t, "-1.50", m.String())
}
