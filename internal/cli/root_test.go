package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	desk "github.com/rustyeddy/tradedesk/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "tradedesk (dev)\n", out)
}

func TestRootWiresSubcommands(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"sessions", "size", "journal", "guide", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestConfigFileFlowsIntoSubcommands(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "desk.yaml")

	out, err := execute(t, "", "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")

	_, err = execute(t, "", "config", "init", "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exists")

	cfg, err := desk.LoadFromFile(path)
	require.NoError(t, err)
	cfg.Calculator.Balance = 50000
	cfg.Clock.Label = "India"
	require.NoError(t, cfg.SaveToFile(path))

	out, err = execute(t, "", "--config", path, "size")
	require.NoError(t, err)
	assert.Contains(t, out, "Risk amount:       500.00 USD")
	assert.Contains(t, out, "Recommended size:  3.33 lots")

	out, err = execute(t, "", "--config", path, "sessions", "--at", "13:30")
	require.NoError(t, err)
	assert.Contains(t, out, "India 13:30")

	out, err = execute(t, "", "config", "validate", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "50,000.00 USD")
}

func TestInvalidConfigFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal:\n  backend: postgres\n"), 0644))

	_, err := execute(t, "", "--config", path, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "journal.backend must be one of: memory, sqlite")
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "timezone: Asia/Kolkata")
	assert.Contains(t, out, "backend: memory")

	out, err = execute(t, "", "config", "show", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"timezone": "Asia/Kolkata"`)
}

func TestBadLogLevel(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "--log-level", "loud", "version")
	assert.Error(t, err)
}

func TestJournalThroughRoot(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "bias sell\nsave\nls\nquit\n", "journal", "--date", "2025-03-10")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-10 (All): 1")
	assert.Contains(t, out, "Sell")
}
