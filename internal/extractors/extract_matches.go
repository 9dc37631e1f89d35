package extractors

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/mrjoshuak/matchexport/types"
	"github.com/rs/zerolog"
)

// MatchExtractor pulls match records out of a parsed match-list page.
// It is safe for concurrent use once built.
type MatchExtractor struct {
	testName  Query
	entry     Query
	matchName Query
	link      Query
	linkAttr  string
	sharedCM  Query
	side      Query
	treeSize  Query
	logger    zerolog.Logger
}

// NewMatchExtractor compiles the given selectors. Empty selectors fall back
// to types.DefaultSelectors.
func NewMatchExtractor(selectors types.Selectors, logger zerolog.Logger) (*MatchExtractor, error) {
	selectors = selectors.Merge(types.DefaultSelectors())

	e := &MatchExtractor{linkAttr: selectors.LinkAttr, logger: logger}
	targets := []struct {
		name     string
		selector string
		dst      *Query
	}{
		{"testName", selectors.TestName, &e.testName},
		{"entry", selectors.Entry, &e.entry},
		{"matchName", selectors.MatchName, &e.matchName},
		{"link", selectors.Link, &e.link},
		{"sharedCM", selectors.SharedCM, &e.sharedCM},
		{"side", selectors.Side, &e.side},
		{"treeSize", selectors.TreeSize, &e.treeSize},
	}
	for _, t := range targets {
		q, err := CompileQuery(t.selector)
		if err != nil {
			return nil, fmt.Errorf("%s selector: %w", t.name, err)
		}
		*t.dst = q
	}
	return e, nil
}

// Extract returns the page owner's name and one record per match entry, in
// document order. A page without an owner name, or with a blank one, fails with
// types.ErrMissingTestName; a page without entries yields no records.
func (e *MatchExtractor) Extract(doc *goquery.Document) (*types.MatchList, error) {
	testName, ok := FindText(doc.Selection, e.testName)
	if !ok || testName == "" {
		return nil, fmt.Errorf("%w (selector %q)", types.ErrMissingTestName, e.testName)
	}

	entries := FindAll(doc.Selection, e.entry)
	list := &types.MatchList{
		TestName: testName,
		Records:  make([]types.MatchRecord, 0, entries.Length()),
	}

	entries.Each(func(i int, entry *goquery.Selection) {
		rec := e.extractEntry(entry)
		rec.TestName = types.Text(testName)
		list.Records = append(list.Records, rec)
	})

	e.logger.Debug().
		Str("test_name", testName).
		Int("entries", len(list.Records)).
		Msg("extracted match list")
	return list, nil
}

// extractEntry reads the per-match fields of one entry. Any field whose node
// is missing is left absent.
func (e *MatchExtractor) extractEntry(entry *goquery.Selection) types.MatchRecord {
	var rec types.MatchRecord

	if name, ok := FindText(entry, e.matchName); ok {
		rec.MatchName = types.Text(name)
	}
	if href, ok := FindAttr(entry, e.link, e.linkAttr); ok {
		rec.TestID, rec.MatchID = ParseMatchLink(href)
	}
	if shared, ok := FindText(entry, e.sharedCM); ok {
		rec.SharedCM = types.Text(ParseSharedCM(shared))
	}
	if side, ok := FindText(entry, e.side); ok {
		rec.Side = types.Text(side)
	}
	if size, ok := FindText(entry, e.treeSize); ok {
		rec.TreeSize = types.Text(size)
	}
	return rec
}
