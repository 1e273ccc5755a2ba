package handoff

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsApp_URL(t *testing.T) {
	w := NewWhatsApp("", "")

	got := w.URL("*TOTAL: R$ 64.00*\n\n_ok_")

	assert.Equal(t, "https://wa.me/5528992546359?text=*TOTAL%3A%20R%24%2064.00*%0A%0A_ok_", got)
}

func TestWhatsApp_URLRoundTrips(t *testing.T) {
	w := NewWhatsApp("https://api.whatsapp.com/send/", "5527999999999")
	msg := "*🍔 PEDIDO*\n   • Bacon (+R$ 3.00)\n   📝 *Obs:* sem cebola & sem tomate"

	raw := w.URL(msg)
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "api.whatsapp.com", u.Host)
	assert.Equal(t, "/send/5527999999999", u.Path)
	assert.Equal(t, msg, u.Query().Get("text"))
	assert.NotContains(t, u.RawQuery, "+")
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "a%20b%2Bc", EncodeComponent("a b+c"))
	assert.Equal(t, "%C3%A7", EncodeComponent("ç"))
}

func TestEncodeComponent_LeavesMarksLiteral(t *testing.T) {
	assert.Equal(t, "*Obs:*%20(sem%20cebola)!%20'ok'%20~-_.", EncodeComponent("*Obs:* (sem cebola)! 'ok' ~-_."))
	assert.Equal(t, "%2B%26%3D%3F%23%2F%25", EncodeComponent("+&=?#/%"))
}
