package journal

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/tradedesk/pkg/id"
)

// FormatEntryOrg renders a TradeEntry as an Org-mode block suitable for
// pasting into a longer-lived journal. Structured fields go in the
// PROPERTIES drawer; free text goes in sub-headings.
func FormatEntryOrg(e TradeEntry) string {
	heading := fmt.Sprintf("** Trade: %s %s %s (%s)", e.Pair, e.Timeframe, e.Session, id.Short(e.ID))

	bias := make([]string, 0, len(e.Bias))
	for _, b := range e.Bias {
		bias = append(bias, string(b))
	}

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", e.ID))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", e.Date))
	b.WriteString(fmt.Sprintf(":PAIR: %s\n", e.Pair))
	b.WriteString(fmt.Sprintf(":TIMEFRAME: %s\n", e.Timeframe))
	b.WriteString(fmt.Sprintf(":SESSION: %s\n", e.Session))
	if e.FibLevel != "" && e.FibLevel != FibNone {
		b.WriteString(fmt.Sprintf(":FIB_LEVEL: %s\n", e.FibLevel))
	}
	b.WriteString(fmt.Sprintf(":BIAS: %s\n", strings.Join(bias, " ")))
	b.WriteString(fmt.Sprintf(":CONFLUENCES: %s\n", strings.Join(e.Confluences, ", ")))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Comments\n- " + e.Comments + "\n\n")
	b.WriteString("*** Mistakes\n- " + e.Mistakes + "\n")

	return b.String()
}

// FormatEntriesOrg renders multiple entries separated by blank lines.
func FormatEntriesOrg(entries []TradeEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatEntryOrg(e))
	}
	return b.String()
}
