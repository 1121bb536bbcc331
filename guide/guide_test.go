package guide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradedesk/risk"
	"github.com/rustyeddy/tradedesk/session"
)

func TestRenderAll(t *testing.T) {
	t.Parallel()

	out, err := Render(NewParams(session.Defaults, risk.DefaultPolicy(), "IST"))
	require.NoError(t, err)

	assert.Contains(t, out, "== Core Execution Strategy ==")
	assert.Contains(t, out, "== Quantity Management ==")
	assert.Contains(t, out, "== Exit Strategy (TP/SL) ==")
	assert.Contains(t, out, "opens (18:30 IST)")
	assert.Contains(t, out, "Fixed 1:2 Risk/Reward")
	assert.Contains(t, out, "Risk 1% of balance per trade by default, never more than 2%.")
	assert.Contains(t, out, "0.5, 0.7, 0.786")
	assert.NotContains(t, out, "{{")
}

func TestRenderFollowsConfiguredValues(t *testing.T) {
	t.Parallel()

	infos := []session.Info{{Name: "New York", Start: session.MustParse("19:30"), End: session.MustParse("04:30")}}
	p := NewParams(infos, risk.Policy{DefaultRiskPercent: 0.5, MaxRiskPercent: 1.25, MinRR: 3}, "IST")

	out, err := Render(p, "strategy", "exit")
	require.NoError(t, err)

	assert.Contains(t, out, "opens (19:30 IST)")
	assert.Contains(t, out, "Fixed 1:3 Risk/Reward")
	assert.NotContains(t, out, "Quantity Management")
	assert.Equal(t, 2, strings.Count(out, "== "))

	out, err = Render(p, "quantity")
	require.NoError(t, err)
	assert.Contains(t, out, "Risk 0.5% of balance per trade by default, never more than 1.25%.")
}

func TestRenderUnknownSectionIsEmpty(t *testing.T) {
	t.Parallel()

	out, err := Render(NewParams(nil, risk.DefaultPolicy(), "IST"), "nope")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"strategy", "quantity", "exit"}, Keys())
}
