// Package money handles the legacy currency strings stored by the gateway
// ("Rp 15.000"). Values are parsed to integer rupiah once at the boundary and
// formatted back only for display.
package money

import (
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Parse strips every non-digit rune and parses the remainder as a
// non-negative integer. Empty or unparseable input yields 0; Parse never
// fails.
func Parse(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return cast.ToInt64(b.String())
}

// Format renders an integer rupiah amount with the id-ID thousands grouping
// and the currency prefix, zero decimal digits ("Rp 15.000").
func Format(v int64) string {
	return "Rp " + printer.Sprintf("%d", v)
}
