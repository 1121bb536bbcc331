package sessions

import (
	"bytes"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradedesk/internal/cli/config"
	"github.com/rustyeddy/tradedesk/session"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	cmd := New(&config.RootConfig{NoColor: true})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestSessionsAtTable(t *testing.T) {
	t.Parallel()

	out := run(t, "--at", "19:30")

	assert.Contains(t, out, "IST 19:30")
	assert.Contains(t, out, "London     13:30-22:30  OPEN    closes in 3h00m")
	assert.Contains(t, out, "New York   18:30-03:30  OPEN    closes in 8h00m")
	assert.Contains(t, out, "Sydney     03:30-12:30  closed  opens in 8h00m")
	assert.Contains(t, out, "Active: London, New York")
}

func TestSessionsAtJSON(t *testing.T) {
	t.Parallel()

	out := run(t, "--at", "02:00", "--json")

	var v boardView
	require.NoError(t, sonic.UnmarshalString(out, &v))
	assert.Equal(t, "02:00", v.Clock)
	assert.Equal(t, []string{"New York"}, v.Active)
	require.Len(t, v.Sessions, 4)
	assert.Equal(t, "Sydney", v.Sessions[0].Name)
	assert.Equal(t, 90, v.Sessions[0].Until)
}

func TestSessionsQuietHour(t *testing.T) {
	t.Parallel()

	// 03:30 closes New York and opens Sydney on the same minute.
	out := run(t, "--at", "03:30", "--json")

	var v boardView
	require.NoError(t, sonic.UnmarshalString(out, &v))
	assert.Equal(t, []string{"Sydney"}, v.Active)
}

func TestSessionsRejectsBadAt(t *testing.T) {
	t.Parallel()

	cmd := New(&config.RootConfig{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--at", "7pm"})
	assert.Error(t, cmd.Execute())
}

func TestFixedAt(t *testing.T) {
	t.Parallel()

	loc, err := session.LoadLocation("")
	require.NoError(t, err)

	now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC) // 04:30 IST on the 11th
	c := fixedAt(now, loc, session.MustParse("19:30"))
	got := c.Now()

	assert.Equal(t, 11, got.Day())
	assert.Equal(t, session.MustParse("19:30"), session.At(got, loc))
}
