package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/mips-stats/renderer"
	"github.com/ChainSafe/mips-stats/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
human_readable: true
mode: registers
format: json
report_output_path: /tmp/report.json
log_level: debug
`)
	prof, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, &Profile{
		HumanReadable:    true,
		Mode:             "registers",
		Format:           "json",
		ReportOutputPath: "/tmp/report.json",
		LogLevel:         "debug",
	}, prof)
	assert.Equal(t, stats.ModeRegisters, prof.StatsMode())
}

func TestLoadEmptyProfile(t *testing.T) {
	prof, err := LoadProfile(writeProfile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, &Profile{}, prof)
	assert.Equal(t, stats.ModeNone, prof.StatsMode())
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open profile")

	_, err = LoadProfile(writeProfile(t, "humanreadable: true\n"))
	assert.ErrorContains(t, err, "failed to parse profile")

	_, err = LoadProfile(writeProfile(t, "mode: syscalls\n"))
	assert.ErrorIs(t, err, stats.ErrUnknownMode)

	_, err = LoadProfile(writeProfile(t, "format: html\n"))
	assert.ErrorIs(t, err, renderer.ErrUnknownFormat)
}
