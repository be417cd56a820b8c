package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLink(t *testing.T) {
	h := NewHandoff("6285832841485")

	link := h.OrderLink("Budi", "Salad Wrap", 2, "Rp 30.000")
	require.True(t, strings.HasPrefix(link, "https://wa.me/6285832841485?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")

	assert.Contains(t, text, "*Budi*")
	assert.Contains(t, text, "Menu: *Salad Wrap*")
	assert.Contains(t, text, "Jumlah: *2*")
	assert.Contains(t, text, "Total: *Rp 30.000*")
	assert.Contains(t, text, "Mohon diproses ya!")
}

func TestContactLink(t *testing.T) {
	h := NewHandoff("628000000000")
	assert.Equal(t, "https://wa.me/628000000000", h.ContactLink())
}
