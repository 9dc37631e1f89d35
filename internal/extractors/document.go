package extractors

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mrjoshuak/matchexport/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// sniffLen is how much of the input is inspected for binary content.
const sniffLen = 8192

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseDocument decodes raw page bytes to UTF-8 and parses them into a
// navigable document. Malformed markup is repaired by the HTML parser; only
// input that is empty or clearly not text fails, with types.ErrParse.
func ParseDocument(raw []byte) (*goquery.Document, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: document is empty", types.ErrParse)
	}

	decoded, err := decode(raw)
	if err != nil {
		return nil, err
	}

	// UTF-16 pages carry NUL bytes until decoded.
	head := decoded
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return nil, fmt.Errorf("%w: document contains binary data", types.ErrParse)
	}
	if len(bytes.TrimSpace(decoded)) == 0 {
		return nil, fmt.Errorf("%w: document is empty", types.ErrParse)
	}

	root, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrParse, err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// decode converts raw to UTF-8 using the BOM or <meta charset> declaration.
// Undeclared input that is valid UTF-8 is kept as is; anything else is read
// as windows-1252, the same fallback browsers use. Bytes the declared charset
// cannot map become U+FFFD rather than an error.
func decode(raw []byte) ([]byte, error) {
	enc, name, certain := charset.DetermineEncoding(raw, "text/html")
	if !certain && utf8.Valid(raw) {
		// DetermineEncoding only samples the first 1024 bytes.
		return bytes.TrimPrefix(raw, utf8BOM), nil
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", types.ErrParse, name, err)
	}
	return bytes.TrimPrefix(decoded, utf8BOM), nil
}
