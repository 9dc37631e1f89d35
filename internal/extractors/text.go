package extractors

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// stripControlChars drops control characters other than whitespace.
func stripControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// cleanText prepares node text for a single output cell: control characters
// are dropped, the text is put in NFC form, and whitespace runs (including
// non-breaking spaces) collapse to one space with both ends trimmed.
func cleanText(s string) string {
	s = stripControlChars(s)
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
