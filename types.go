package matchexport

import (
	"github.com/mrjoshuak/matchexport/types"
)

// Field is a text value that may be absent from the page.
type Field = types.Field

// MatchRecord is one DNA match, with seven independently optional fields.
type MatchRecord = types.MatchRecord

// MatchList is the owner name and the records of one page, in page order.
type MatchList = types.MatchList

// Selectors locates the parts of a match-list page.
type Selectors = types.Selectors

// ExtractionOptions configures extraction and export.
type ExtractionOptions = types.ExtractionOptions

// IOError reports a failed read of the input or write of the output.
type IOError = types.IOError

// Columns is the fixed header row of an exported file.
var Columns = types.Columns

// Errors returned by extraction and export.
var (
	ErrMissingTestName = types.ErrMissingTestName
	ErrParse           = types.ErrParse
	ErrNoInput         = types.ErrNoInput
	ErrTimeout         = types.ErrTimeout
)

// NewIOError wraps err as an *IOError, or returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	return types.NewIOError(op, path, err)
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() ExtractionOptions {
	return types.DefaultOptions()
}

// DefaultSelectors returns the selectors for the saved match-list page layout.
func DefaultSelectors() Selectors {
	return types.DefaultSelectors()
}

// BuildInfo contains version and build information for the matchexport library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information for the matchexport library.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the matchexport library.
var Version = types.Version

// Name is the name of the matchexport library.
var Name = types.Name
