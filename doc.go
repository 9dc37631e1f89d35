/*
Package matchexport turns a saved DNA match-list page into a spreadsheet.

The page is parsed with a forgiving HTML parser, every match entry is read
through a fixed set of selectors, and the results are written as
comma-separated (or tab-separated) rows:

	Test_ID,Test_Name,Match_ID,Match_Name,Shared_CM,Side,Tree_Size

Basic Usage:

	import "github.com/mrjoshuak/matchexport"

	// One step: extract and export
	list, err := matchexport.Convert(ctx, "matches.html", "matches.csv")
	if err != nil {
	    // Handle error
	}
	fmt.Printf("%d matches for %s\n", len(list.Records), list.TestName)

Two steps, with options:

	ext := matchexport.New(
	    matchexport.WithTimeout(time.Minute),
	    matchexport.WithSelectors(matchexport.Selectors{Side: "span.side"}),
	)
	list, err := ext.ExtractFromFile(ctx, "matches.html", nil)
	if err != nil {
	    // Handle error
	}
	err = matchexport.Export(list.TestName, list.Records, "matches.tsv", &matchexport.ExtractionOptions{Delimiter: '\t'})

Errors:

  - ErrMissingTestName: the page has no owner name; nothing is written
  - ErrParse: the input is empty or binary
  - *IOError: reading the page or writing the output failed

A match entry that lacks some sub-field is not an error. The missing values
are written as empty cells.
*/
package matchexport
