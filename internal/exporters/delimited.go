// Package exporters writes extracted match lists to delimited text files.
package exporters

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mrjoshuak/matchexport/types"
)

// ParseDelimiter accepts a single character or one of the names "comma",
// "tab", "semicolon" and "pipe".
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", "comma", "csv":
		return ',', nil
	case "tab", "tsv", `\t`:
		return '\t', nil
	case "semicolon":
		return ';', nil
	case "pipe":
		return '|', nil
	}

	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || !validDelimiter(r) {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// validDelimiter mirrors the checks encoding/csv applies to Writer.Comma.
func validDelimiter(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError
}

// WriteRows writes the header row and one row per record to w. The Test_Name
// column of every row is testName. Absent fields become empty cells and cells
// containing the delimiter, quotes or newlines are quoted.
func WriteRows(w io.Writer, testName string, records []types.MatchRecord, delimiter rune) error {
	if !validDelimiter(delimiter) {
		return fmt.Errorf("invalid delimiter %q", delimiter)
	}

	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(types.Columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row(testName)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the rows to path, replacing any existing file. The data is
// written to a temporary file in the same directory and renamed into place,
// so on failure path is left as it was. Failures are reported as *types.IOError.
func WriteFile(path, testName string, records []types.MatchRecord, delimiter rune) (err error) {
	if !validDelimiter(delimiter) {
		return fmt.Errorf("invalid delimiter %q", delimiter)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return types.NewIOError("write", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = WriteRows(tmp, testName, records, delimiter); err != nil {
		return types.NewIOError("write", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return types.NewIOError("write", path, err)
	}
	if err = tmp.Close(); err != nil {
		return types.NewIOError("write", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return types.NewIOError("write", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return types.NewIOError("write", path, err)
	}
	return nil
}
