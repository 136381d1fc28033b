package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecords = `{"id":"A","title":"Paper A","authors":[["AUTHOR","A"]],"date":2000,"tokens":{"x":1,"y":2}}
{"id":"B","title":"Paper B","authors":[["AUTHOR","B"]],"date":2000,"tokens":{"x":3}}
{"id":"C","title":"Paper C","authors":[["AUTHOR","C"]],"date":2001,"tokens":{"x":1}}
`

// execute runs the root command against a temp records file with an
// isolated config directory, returning stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	records := filepath.Join(dir, "records.jsonl")
	require.NoError(t, os.WriteFile(records, []byte(testRecords), 0600))

	full := append([]string{args[0]}, records)
	full = append(full, args[1:]...)
	full = append(full, "--config-dir", dir,
		"--index-by", "id", "--index-field", "date", "--index-feature", "tokens")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(full)
	defer func() {
		rootCmd.SetArgs(nil)
		flagIndexBy = ""
		flagIndexFields = nil
		flagIndexFeatures = nil
		flagConfigDir = ""
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// TestVersionCmd_Executes tests the version command output
func TestVersionCmd_Executes(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version", "--config-dir", t.TempDir()})
	defer func() { rootCmd.SetArgs(nil) }()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "corpora version dev")
}

// TestStatsCmd tests corpus statistics over a records file
func TestStatsCmd(t *testing.T) {
	out, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Documents: 3")
	assert.Contains(t, out, "date")
	assert.Contains(t, out, "tokens")
}

// TestDistributionCmd_Documents tests the per-window document counts
func TestDistributionCmd_Documents(t *testing.T) {
	out, err := execute(t, "distribution")
	require.NoError(t, err)
	assert.Contains(t, out, "2000")
	assert.Contains(t, out, "2001")
}

// TestDistributionCmd_Feature tests the per-window token counts
func TestDistributionCmd_Feature(t *testing.T) {
	out, err := execute(t, "distribution", "--featureset", "tokens", "--token", "x")
	require.NoError(t, err)
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "1")
}

// TestTopCmd tests the global ranking output
func TestTopCmd(t *testing.T) {
	out, err := execute(t, "top", "--featureset", "tokens", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "5")
}

// TestTopCmd_PerSlice tests per-window rankings
func TestTopCmd_PerSlice(t *testing.T) {
	out, err := execute(t, "top", "--featureset", "tokens", "--per-slice")
	require.NoError(t, err)
	assert.Contains(t, out, "window 2000")
	assert.Contains(t, out, "window 2001")
}

// TestStatsCmd_MissingFile tests a useful error for a bad path
func TestStatsCmd_MissingFile(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats", "no-such-file.jsonl", "--config-dir", t.TempDir()})
	defer func() { rootCmd.SetArgs(nil) }()

	err := rootCmd.Execute()
	assert.Error(t, err)
}
