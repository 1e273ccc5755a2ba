package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with precise decimal arithmetic.
// It wraps decimal.Decimal so repeated additions never drift the way
// binary floats do. Money is immutable - all operations return new instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromCents creates Money from an integer amount of cents.
// For example: NewMoneyFromCents(1400) represents R$ 14.00
func NewMoneyFromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -2)}
}

// NewMoneyFromDecimal creates Money from a decimal string.
// For example: "19.99", "100.00", "1.5"
func NewMoneyFromDecimal(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid decimal format %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// MustMoney is NewMoneyFromDecimal for literals known to be valid.
func MustMoney(s string) Money {
	m, err := NewMoneyFromDecimal(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a Money instance representing zero.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Add returns a new Money that is the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns a new Money that is the difference of m and other.
func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyByQuantity scales the amount by an integer quantity.
func (m Money) MultiplyByQuantity(q int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(q)))}
}

// IsZero returns true if the money amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the money amount is negative.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equals returns true if m equals other, regardless of scale ("3" == "3.00").
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Cents returns the amount in cents, rounded half away from zero.
func (m Money) Cents() int64 {
	return m.amount.Shift(2).Round(0).IntPart()
}

// String returns the amount with two decimal places, e.g. "64.00".
func (m Money) String() string {
	return m.FloatString(2)
}

// FloatString returns a decimal string with the given number of places.
// The separator is always '.', with no digit grouping.
func (m Money) FloatString(places int32) string {
	return m.amount.StringFixed(places)
}
