package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verbose bool, fn func()) string {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	fn()
	return buf.String()
}

// TestSetVerbose tests the verbose toggle round-trips
func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}

// TestDebug_WhenVerbose tests debug output format
func TestDebug_WhenVerbose(t *testing.T) {
	out := capture(t, true, func() { Debug("indexed %d documents", 3) })
	assert.Equal(t, "[DEBUG] indexed 3 documents\n", out)
}

// TestDebug_WhenNotVerbose tests debug is silent by default
func TestDebug_WhenNotVerbose(t *testing.T) {
	out := capture(t, false, func() { Debug("hidden") })
	assert.Empty(t, out)
}

// TestSection tests the section header format
func TestSection(t *testing.T) {
	out := capture(t, true, func() { Section("Slicing") })
	assert.Equal(t, "\n=== Slicing ===\n", out)
}

// TestInfoAndWarn tests the remaining levels
func TestInfoAndWarn(t *testing.T) {
	out := capture(t, true, func() {
		Info("windows: %d", 2)
		Warn("gap year %d", 2002)
	})
	assert.Contains(t, out, "[INFO] windows: 2\n")
	assert.Contains(t, out, "[WARN] gap year 2002\n")
}
