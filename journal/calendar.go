package journal

import (
	"fmt"
	"time"
)

// Day is one calendar cell.
type Day struct {
	Date    string
	Day     int
	Markers []Bias // one per entry, in entry order
}

// MonthView is a Sunday-first month grid.
type MonthView struct {
	Year  int
	Month time.Month
	Lead  int // blank cells before the 1st
	Days  []Day
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Month builds the calendar for year/month, marking days that have trades.
func Month(s Store, year int, month time.Month) (MonthView, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	mv := MonthView{
		Year:  year,
		Month: month,
		Lead:  int(first.Weekday()),
	}

	n := daysIn(year, month)
	mv.Days = make([]Day, 0, n)
	for d := 1; d <= n; d++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		day := Day{Date: key, Day: d}

		has, err := s.Has(key)
		if err != nil {
			return MonthView{}, fmt.Errorf("day %s: %w", key, err)
		}
		if has {
			entries, err := s.List(key, AllSessions)
			if err != nil {
				return MonthView{}, fmt.Errorf("day %s: %w", key, err)
			}
			for _, e := range entries {
				day.Markers = append(day.Markers, e.Marker())
			}
		}
		mv.Days = append(mv.Days, day)
	}
	return mv, nil
}

// Weeks splits the grid into rows of seven, padding with zero Days.
func (mv MonthView) Weeks() [][]Day {
	cells := make([]Day, mv.Lead, mv.Lead+len(mv.Days))
	cells = append(cells, mv.Days...)
	for len(cells)%7 != 0 {
		cells = append(cells, Day{})
	}

	var out [][]Day
	for i := 0; i < len(cells); i += 7 {
		out = append(out, cells[i:i+7])
	}
	return out
}
