// Package handoff builds the link that delivers a finished order to the
// restaurant's messaging channel.
package handoff

import (
	"net/url"
	"strings"
)

const (
	DefaultBaseURL = "https://wa.me"
	DefaultPhone   = "5528992546359"
)

// WhatsApp builds click-to-chat links for a fixed recipient.
type WhatsApp struct {
	BaseURL string
	Phone   string
}

// NewWhatsApp creates a link builder; empty arguments fall back to the defaults.
func NewWhatsApp(baseURL, phone string) *WhatsApp {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if phone == "" {
		phone = DefaultPhone
	}
	return &WhatsApp{BaseURL: strings.TrimRight(baseURL, "/"), Phone: phone}
}

// URL returns <base>/<phone>?text=<message>, with message percent-encoded.
func (w *WhatsApp) URL(message string) string {
	return w.BaseURL + "/" + url.PathEscape(w.Phone) + "?text=" + EncodeComponent(message)
}

// componentMarks undoes QueryEscape where encodeURIComponent differs: spaces
// are %20 rather than '+', and the marks ! ' ( ) * stay literal.
var componentMarks = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s as a single URI component, producing the
// same bytes as JavaScript's encodeURIComponent.
func EncodeComponent(s string) string {
	return componentMarks.Replace(url.QueryEscape(s))
}
