// Package rolls turns chat events into roll records. Everything here is pure:
// no I/O, no clocks, no shared state.
package rolls

import (
	"strings"

	"golang.org/x/net/html"
)

// Normalize strips markup from a message body and collapses whitespace.
// Entities are decoded, so "&nbsp;" and "&amp;" come out as text.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		default:
			// tags become separators so "<b>3d6</b>roll" does not glue words
			b.WriteByte(' ')
		}
	}
}
