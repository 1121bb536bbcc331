package journal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rustyeddy/tradedesk/internal/cli/output"
	"github.com/rustyeddy/tradedesk/journal"
)

const calWidth = 7 * 5

func (s *Shell) cmdCal(args []string) error {
	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "next":
			s.month = s.month.AddDate(0, 1, 0)
		case "prev":
			s.month = s.month.AddDate(0, -1, 0)
		default:
			t, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("bad month %q: want YYYY-MM, next or prev", args[0])
			}
			s.month = t
		}
	}

	mv, err := journal.Month(s.store, s.month.Year(), s.month.Month())
	if err != nil {
		return err
	}
	writeMonth(s.out, mv, s.Date(), s.Color)
	return nil
}

// writeMonth draws a Sunday-first grid, five columns per day: a '>' on the
// selected day, the day number, and a marker (B all buys, S all sells,
// * mixed). Days with entries are then listed with one marker per entry.
func writeMonth(w io.Writer, mv journal.MonthView, selected string, color bool) {
	title := fmt.Sprintf("%s %d", mv.Month, mv.Year)
	fmt.Fprintf(w, "%*s\n", (calWidth+len(title))/2, title)
	fmt.Fprintln(w, "   Su   Mo   Tu   We   Th   Fr   Sa")

	for _, week := range mv.Weeks() {
		var b strings.Builder
		for _, d := range week {
			b.WriteString(cell(d, selected, color))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	for _, d := range mv.Days {
		if len(d.Markers) == 0 {
			continue
		}
		marks := make([]string, 0, len(d.Markers))
		for _, m := range d.Markers {
			marks = append(marks, paintMarker(color, m, string(m)[:1]))
		}
		fmt.Fprintf(w, "  %s  %s\n", d.Date, strings.Join(marks, " "))
	}
}

func cell(d journal.Day, selected string, color bool) string {
	if d.Day == 0 {
		return "     "
	}

	sel := " "
	if d.Date == selected {
		sel = ">"
	}
	return sel + fmt.Sprintf("%3d", d.Day) + summary(d.Markers, color)
}

func summary(markers []journal.Bias, color bool) string {
	if len(markers) == 0 {
		return " "
	}
	first := markers[0]
	for _, m := range markers[1:] {
		if m != first {
			return "*"
		}
	}
	return paintMarker(color, first, string(first)[:1])
}

func paintMarker(color bool, b journal.Bias, s string) string {
	if b == journal.Buy {
		return output.Paint(color, "green", s)
	}
	return output.Paint(color, "red", s)
}
