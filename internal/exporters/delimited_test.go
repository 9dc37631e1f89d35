package exporters

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrjoshuak/matchexport/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords(n int) []types.MatchRecord {
	records := make([]types.MatchRecord, n)
	for i := range records {
		records[i] = types.MatchRecord{
			TestID:    types.Text("T1"),
			TestName:  types.Text("stale"),
			MatchID:   types.Text("M" + strings.Repeat("x", i)),
			MatchName: types.Text("Match " + strings.Repeat("I", i+1)),
			SharedCM:  types.Text("42"),
		}
	}
	return records
}

func readAll(t *testing.T, data []byte, delimiter rune) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delimiter
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteRowsRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		var buf bytes.Buffer
		require.NoError(t, WriteRows(&buf, "John Smith", sampleRecords(n), ','))

		rows := readAll(t, buf.Bytes(), ',')
		require.Len(t, rows, n+1)
		assert.Equal(t, types.Columns, rows[0])
		for _, row := range rows[1:] {
			assert.Len(t, row, len(types.Columns))
			assert.Equal(t, "John Smith", row[1])
		}
	}
}

func TestWriteRowsHeaderLiteral(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, "x", nil, ','))
	assert.Equal(t, "Test_ID,Test_Name,Match_ID,Match_Name,Shared_CM,Side,Tree_Size\n", buf.String())
}

func TestWriteRowsAbsentFieldsAreEmpty(t *testing.T) {
	var buf bytes.Buffer
	records := []types.MatchRecord{{MatchName: types.Text("Jane")}}
	require.NoError(t, WriteRows(&buf, "John", records, ','))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ",John,,Jane,,,", lines[1])
}

func TestWriteRowsQuotesSpecialCharacters(t *testing.T) {
	var buf bytes.Buffer
	records := []types.MatchRecord{{
		MatchName: types.Text(`A. "Quoted", Name`),
		TreeSize:  types.Text("line1\nline2"),
	}}
	require.NoError(t, WriteRows(&buf, "Smith, John", records, ','))
	assert.Contains(t, buf.String(), `"A. ""Quoted"", Name"`)

	rows := readAll(t, buf.Bytes(), ',')
	require.Len(t, rows, 2)
	assert.Equal(t, "Smith, John", rows[1][1])
	assert.Equal(t, `A. "Quoted", Name`, rows[1][3])
	assert.Equal(t, "line1\nline2", rows[1][6])
}

func TestWriteRowsTab(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, "John", sampleRecords(2), '\t'))
	rows := readAll(t, buf.Bytes(), '\t')
	assert.Len(t, rows, 3)
	assert.True(t, strings.HasPrefix(buf.String(), "Test_ID\tTest_Name\t"))
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.csv")
	require.NoError(t, os.WriteFile(path, []byte("old contents that are longer than the new file\n"), 0o600))

	require.NoError(t, WriteFile(path, "John", sampleRecords(1), ','))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	rows := readAll(t, data, ',')
	assert.Len(t, rows, 2)
	assert.NotContains(t, string(data), "old contents")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "matches.csv")
	err := WriteFile(path, "John", sampleRecords(1), ',')

	var ioErr *types.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", ',', false},
		{"comma", ',', false},
		{"TAB", '\t', false},
		{`\t`, '\t', false},
		{"semicolon", ';', false},
		{";", ';', false},
		{"|", '|', false},
		{`"`, 0, true},
		{"ab", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDelimiter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
