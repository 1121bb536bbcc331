package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEntryOrg(t *testing.T) {
	t.Parallel()

	e := TradeEntry{
		ID:          "01JNQ3Z9K8X7Y6W5V4T3S2R1PA",
		Date:        "2025-03-15",
		Pair:        "XAUUSD",
		Timeframe:   "5m",
		Session:     "New York",
		FibLevel:    "FIB 0.7",
		Confluences: []string{"Liquidity Sweep", "Resistance R1"},
		Bias:        []Bias{Sell},
		Comments:    "NY open reversal",
		Mistakes:    "moved stop",
	}

	result := FormatEntryOrg(e)

	// Check heading
	assert.Contains(t, result, "** Trade: XAUUSD 5m New York (T3S2R1PA)")

	// Check properties drawer
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: 01JNQ3Z9K8X7Y6W5V4T3S2R1PA")
	assert.Contains(t, result, ":DATE: 2025-03-15")
	assert.Contains(t, result, ":PAIR: XAUUSD")
	assert.Contains(t, result, ":TIMEFRAME: 5m")
	assert.Contains(t, result, ":SESSION: New York")
	assert.Contains(t, result, ":FIB_LEVEL: FIB 0.7")
	assert.Contains(t, result, ":BIAS: Sell")
	assert.Contains(t, result, ":CONFLUENCES: Liquidity Sweep, Resistance R1")
	assert.Contains(t, result, ":END:")

	// Check narrative sections
	assert.Contains(t, result, "*** Comments\n- NY open reversal")
	assert.Contains(t, result, "*** Mistakes\n- moved stop")
}

func TestFormatEntryOrgOmitsNoFib(t *testing.T) {
	t.Parallel()

	result := FormatEntryOrg(TradeEntry{ID: "short", Pair: "EURUSD", FibLevel: FibNone, Bias: []Bias{Buy, Sell}})

	assert.Contains(t, result, "(short)")
	assert.NotContains(t, result, ":FIB_LEVEL:")
	assert.Contains(t, result, ":BIAS: Buy Sell")
}

func TestFormatEntriesOrg(t *testing.T) {
	t.Parallel()

	out := FormatEntriesOrg([]TradeEntry{
		{ID: "A", Pair: "EURUSD"},
		{ID: "B", Pair: "GBPUSD"},
	})

	assert.Equal(t, 2, strings.Count(out, "** Trade:"))
	assert.Contains(t, out, "\n\n\n** Trade: GBPUSD")
	assert.Empty(t, FormatEntriesOrg(nil))
}
