// Package types provides the core data structures for the matchexport library.
package types

// Field is a text value that may be absent from the source document.
// The zero value is an absent field.
type Field struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

// Text returns a present field holding s.
func Text(s string) Field {
	return Field{Value: s, Valid: true}
}

// String returns the value, or "" when the field is absent.
func (f Field) String() string {
	if !f.Valid {
		return ""
	}
	return f.Value
}

// Columns is the fixed header row of an exported match list.
var Columns = []string{
	"Test_ID",
	"Test_Name",
	"Match_ID",
	"Match_Name",
	"Shared_CM",
	"Side",
	"Tree_Size",
}

// MatchRecord is one DNA match as it appears on a match-list page.
// Every field is independently optional; the absence of one says nothing
// about the others.
type MatchRecord struct {
	TestID    Field `json:"test_id"`
	TestName  Field `json:"test_name"`
	MatchID   Field `json:"match_id"`
	MatchName Field `json:"match_name"`
	SharedCM  Field `json:"shared_cm"`
	Side      Field `json:"side"`
	TreeSize  Field `json:"tree_size"`
}

// Row returns the record's cells in column order. The Test_Name cell is
// always testName, the single owner name of the page the record came from.
func (r MatchRecord) Row(testName string) []string {
	return []string{
		r.TestID.String(),
		testName,
		r.MatchID.String(),
		r.MatchName.String(),
		r.SharedCM.String(),
		r.Side.String(),
		r.TreeSize.String(),
	}
}

// MatchList is the result of extracting one match-list page.
// Records are kept in document order.
type MatchList struct {
	TestName string        `json:"test_name"`
	Records  []MatchRecord `json:"records"`
}
