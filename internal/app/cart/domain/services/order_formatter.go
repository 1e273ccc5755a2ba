package services

import (
	"fmt"
	"strings"

	"github.com/vinicius-pimenta-mkt/lachapa-cardapio/internal/app/cart/domain"
)

const (
	DefaultOrderTitle   = "🍔 PEDIDO - LA CHAPA HAMBURGUERIA"
	DefaultOrderClosing = "Aguardando confirmação do pedido!"
)

// OrderFormatter renders a cart as the plain-text order summary sent to the
// restaurant. Markup is WhatsApp's: *bold* and _italic_. The output is not
// escaped for any transport.
type OrderFormatter struct {
	Title   string
	Closing string

	pricing *PricingCalculator
}

// NewOrderFormatter creates a formatter; empty arguments fall back to the defaults.
func NewOrderFormatter(title, closing string) *OrderFormatter {
	if title == "" {
		title = DefaultOrderTitle
	}
	if closing == "" {
		closing = DefaultOrderClosing
	}
	return &OrderFormatter{Title: title, Closing: closing, pricing: NewPricingCalculator()}
}

// Format renders items in order. It depends only on its input, so formatting
// an unchanged cart twice gives byte-identical output.
func (f *OrderFormatter) Format(items []domain.LineItem) string {
	pricing := f.pricing
	if pricing == nil {
		pricing = NewPricingCalculator()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "*%s*\n\n", f.Title)

	for i, it := range items {
		lineTotal := pricing.LineTotal(it)

		fmt.Fprintf(&b, "*%d. %s* (%dx)\n", i+1, it.Name, it.Quantity)
		fmt.Fprintf(&b, "   💰 R$ %s\n", lineTotal.FloatString(2))

		if len(it.AddOns) > 0 {
			b.WriteString("   *Adicionais:*\n")
			for _, a := range it.AddOns {
				fmt.Fprintf(&b, "   • %s (+R$ %s)\n", a.Name, a.Price.FloatString(2))
			}
		}

		if it.Observations != "" {
			fmt.Fprintf(&b, "   📝 *Obs:* %s\n", it.Observations)
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "*TOTAL: R$ %s*\n\n", pricing.CartTotal(items).FloatString(2))
	fmt.Fprintf(&b, "_%s_", f.Closing)

	return b.String()
}

// FormatCart is Format over the cart's current rows.
func (f *OrderFormatter) FormatCart(c *domain.Cart) string {
	return f.Format(c.Items())
}
