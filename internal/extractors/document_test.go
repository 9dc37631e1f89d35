package extractors

import (
	"errors"
	"testing"

	"github.com/mrjoshuak/matchexport/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentRejectsNonMarkup(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"whitespace", []byte(" \n\t ")},
		{"binary", []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument(tt.raw)
			assert.Nil(t, doc)
			assert.True(t, errors.Is(err, types.ErrParse))
		})
	}
}

func TestParseDocumentToleratesMalformedMarkup(t *testing.T) {
	doc, err := ParseDocument([]byte(`<div><span class="a">one<span class="a">two &bogus; <p>unclosed`))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("span.a").Length())
}

func TestParseDocumentDecodesDeclaredCharset(t *testing.T) {
	// "Zoë" in windows-1252.
	raw := []byte("<html><head><meta charset=\"windows-1252\"></head><body><b>Zo\xeb</b></body></html>")
	doc, err := ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, "Zoë", doc.Find("b").Text())
}

func TestParseDocumentKeepsUndeclaredUTF8(t *testing.T) {
	padding := make([]byte, 2048)
	for i := range padding {
		padding[i] = ' '
	}
	raw := append([]byte("<html><body>"), padding...)
	raw = append(raw, []byte("<b>Zoë</b></body></html>")...)

	doc, err := ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, "Zoë", doc.Find("b").Text())
}

func TestParseDocumentDecodesUTF16(t *testing.T) {
	page := `<html><body><span class="userCardContent hideVisually768 navRestrictedName">Ada</span></body></html>`

	tests := []struct {
		name string
		bom  []byte
		put  func(b []byte, r rune)
	}{
		{"little endian", []byte{0xff, 0xfe}, func(b []byte, r rune) { b[0], b[1] = byte(r), byte(r>>8) }},
		{"big endian", []byte{0xfe, 0xff}, func(b []byte, r rune) { b[0], b[1] = byte(r>>8), byte(r) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := append([]byte{}, tt.bom...)
			for _, r := range page {
				b := make([]byte, 2)
				tt.put(b, r)
				raw = append(raw, b...)
			}

			doc, err := ParseDocument(raw)
			require.NoError(t, err)
			assert.Equal(t, "Ada", doc.Find("span.navRestrictedName").Text())
		})
	}
}

func TestParseDocumentReplacesUndecodableBytes(t *testing.T) {
	raw := []byte("<html><head><meta charset=\"utf-8\"></head><body><b>Zo\xff</b></body></html>")
	doc, err := ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, "Zo\ufffd", doc.Find("b").Text())
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Jane Doe", cleanText("  Jane \n\t Doe  "))
	assert.Equal(t, "\u00c9mile Zola", cleanText("E\u0301mile\u00a0Zola"))
	assert.Equal(t, "ab", cleanText("a\u0000b"))
}
