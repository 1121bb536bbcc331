package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(&buf, "warn", false)
	require.NoError(t, err)

	log.Info("quiet")
	log.Warn("loud")
	require.NoError(t, log.Sync())

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "loud")
	// A buffer is never a terminal, so no escape codes.
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(&bytes.Buffer{}, "chatty", false)
	assert.Error(t, err)
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
