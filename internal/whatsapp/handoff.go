// Package whatsapp builds the checkout handoff link. The handoff is one-way:
// the customer opens a pre-filled chat, there is no delivery confirmation and
// the stored order is unaffected either way.
package whatsapp

import (
	"fmt"
	"net/url"
)

// Handoff builds wa.me links for a single business phone number.
type Handoff struct {
	phone string
}

func NewHandoff(phone string) *Handoff {
	return &Handoff{phone: phone}
}

// OrderLink renders the pre-filled order message for a checkout. totalPrice
// is the already formatted currency string shown to the customer.
func (h *Handoff) OrderLink(customerName, productName string, qty int, totalPrice string) string {
	text := fmt.Sprintf(
		"Halo Upgradeats!\n\nSaya *%s* mau pesan:\nMenu: *%s*\nJumlah: *%d*\nTotal: *%s*\n\nMohon diproses ya!",
		customerName, productName, qty, totalPrice,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", h.phone, url.QueryEscape(text))
}

// ContactLink is the bare chat link used by the storefront header.
func (h *Handoff) ContactLink() string {
	return "https://wa.me/" + h.phone
}
