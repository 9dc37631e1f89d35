package types

import (
	"time"

	"github.com/rs/zerolog"
)

// Selectors locates the parts of a match-list page. Each value is a CSS
// selector, or an XPath expression when prefixed with "xpath:".
// TestName and Entry are evaluated against the whole document; the rest are
// evaluated relative to each entry.
type Selectors struct {
	TestName  string `yaml:"testName" json:"testName"`
	Entry     string `yaml:"entry" json:"entry"`
	MatchName string `yaml:"matchName" json:"matchName"`
	Link      string `yaml:"link" json:"link"`
	LinkAttr  string `yaml:"linkAttr" json:"linkAttr"`
	SharedCM  string `yaml:"sharedCM" json:"sharedCM"`
	Side      string `yaml:"side" json:"side"`
	TreeSize  string `yaml:"treeSize" json:"treeSize"`
}

// DefaultSelectors returns the selectors for the saved match-list page layout.
func DefaultSelectors() Selectors {
	return Selectors{
		TestName:  "span.userCardContent.hideVisually768.navRestrictedName",
		Entry:     "match-entry",
		MatchName: "h3 a.userCardTitle",
		Link:      "a.userCardImg",
		LinkAttr:  "href",
		SharedCM:  "button.sharedDnaText",
		Side:      "span.parentLineText",
		TreeSize:  "div.treeSizeText",
	}
}

// Merge returns s with every empty value filled in from base.
func (s Selectors) Merge(base Selectors) Selectors {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return Selectors{
		TestName:  pick(s.TestName, base.TestName),
		Entry:     pick(s.Entry, base.Entry),
		MatchName: pick(s.MatchName, base.MatchName),
		Link:      pick(s.Link, base.Link),
		LinkAttr:  pick(s.LinkAttr, base.LinkAttr),
		SharedCM:  pick(s.SharedCM, base.SharedCM),
		Side:      pick(s.Side, base.Side),
		TreeSize:  pick(s.TreeSize, base.TreeSize),
	}
}

// ExtractionOptions configures extraction and export.
type ExtractionOptions struct {
	Selectors Selectors      // Where to find each field
	Timeout   time.Duration  // Upper bound on extracting one document
	Delimiter rune           // Output field separator
	Logger    zerolog.Logger // Diagnostics; disabled by default
}

// DefaultOptions returns the default extraction options: the built-in
// selectors, a 30 second timeout, comma-separated output and no logging.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		Selectors: DefaultSelectors(),
		Timeout:   time.Second * 30,
		Delimiter: ',',
		Logger:    zerolog.Nop(),
	}
}
