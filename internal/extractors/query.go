package extractors

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// xpathPrefix marks a selector string as an XPath expression rather than CSS.
const xpathPrefix = "xpath:"

// Query is a compiled selector. It is either a CSS selector evaluated with
// goquery or an XPath expression evaluated with htmlquery.
type Query struct {
	raw   string
	css   cascadia.Selector
	xpath *xpath.Expr
}

// CompileQuery compiles a selector string. Strings starting with "xpath:"
// are XPath expressions; everything else is CSS.
func CompileQuery(selector string) (Query, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return Query{}, fmt.Errorf("empty selector")
	}

	if expr, ok := strings.CutPrefix(selector, xpathPrefix); ok {
		compiled, err := xpath.Compile(strings.TrimSpace(expr))
		if err != nil {
			return Query{}, fmt.Errorf("compile xpath %q: %w", expr, err)
		}
		return Query{raw: selector, xpath: compiled}, nil
	}

	compiled, err := cascadia.Compile(selector)
	if err != nil {
		return Query{}, fmt.Errorf("compile selector %q: %w", selector, err)
	}
	return Query{raw: selector, css: compiled}, nil
}

// String returns the selector the query was compiled from.
func (q Query) String() string {
	return q.raw
}

// IsXPath reports whether the query is an XPath expression.
func (q Query) IsXPath() bool {
	return q.xpath != nil
}

// FindAll returns every descendant of sel matching q, in document order.
func FindAll(sel *goquery.Selection, q Query) *goquery.Selection {
	if q.xpath == nil {
		if q.css == nil {
			return sel.FindNodes()
		}
		return sel.FindMatcher(q.css)
	}

	var found []*html.Node
	for _, n := range sel.Nodes {
		found = append(found, htmlquery.QuerySelectorAll(n, q.xpath)...)
	}
	return sel.FindNodes(found...)
}

// FindFirst returns the first descendant of sel matching q. The selection is
// empty when nothing matches.
func FindFirst(sel *goquery.Selection, q Query) *goquery.Selection {
	return FindAll(sel, q).First()
}

// FindText returns the trimmed text of the first descendant of sel matching q.
// The boolean is false when no node matches.
func FindText(sel *goquery.Selection, q Query) (string, bool) {
	node := FindFirst(sel, q)
	if node.Length() == 0 {
		return "", false
	}
	return cleanText(node.Text()), true
}

// FindAttr returns the named attribute of the first descendant of sel matching
// q. The boolean is false when no node matches or the node lacks the attribute.
func FindAttr(sel *goquery.Selection, q Query, attr string) (string, bool) {
	node := FindFirst(sel, q)
	if node.Length() == 0 {
		return "", false
	}
	value, ok := node.Attr(attr)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(value), true
}
