package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrjoshuak/matchexport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<span class="userCardContent hideVisually768 navRestrictedName">Ada Lovelace</span>
<match-entry><h3><a class="userCardTitle">Byron</a></h3></match-entry>
<match-entry><h3><a class="userCardTitle">Babbage</a></h3></match-entry>
</body></html>`

func TestConvertTaskThroughRunner(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	out := filepath.Join(dir, "page.csv")
	require.NoError(t, os.WriteFile(in, []byte(page), 0o600))

	r := New(ConvertTask(matchexport.WithDelimiter(';')), zerolog.Nop())
	require.NoError(t, r.Start(context.Background(), Job{InputPath: in, OutputPath: out}))

	res := receive(t, r)
	require.Equal(t, Success, res.Status, res.Message)
	assert.Equal(t, 2, res.Records)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ";Ada Lovelace;;Babbage;;;", lines[2])
}

func TestConvertTaskFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	out := filepath.Join(dir, "page.csv")
	require.NoError(t, os.WriteFile(in, []byte("<html><body><p>signed out</p></body></html>"), 0o600))

	r := New(ConvertTask(), zerolog.Nop())
	require.NoError(t, r.Start(context.Background(), Job{InputPath: in, OutputPath: out}))

	res := receive(t, r)
	assert.Equal(t, Failure, res.Status)
	assert.ErrorIs(t, res.Err, matchexport.ErrMissingTestName)

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}
