// Package session evaluates named daily market sessions against a
// wall clock in a single reference timezone.
package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of one session cycle.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock minute of the day, 0..1439.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" (24h clock).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("bad time of day %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || !digits(hh) || h > 23 {
		return 0, fmt.Errorf("bad hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || !digits(mm) || m > 59 || len(mm) != 2 {
		return 0, fmt.Errorf("bad minute in %q", s)
	}
	return TimeOfDay(h*60 + m), nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MustParse is ParseTimeOfDay for package-level tables.
func MustParse(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	n := int(t.normalize())
	return fmt.Sprintf("%02d:%02d", n/60, n%60)
}

func (t TimeOfDay) normalize() TimeOfDay {
	n := int(t) % MinutesPerDay
	if n < 0 {
		n += MinutesPerDay
	}
	return TimeOfDay(n)
}

// At converts an instant to its minute of day in loc.
func At(t time.Time, loc *time.Location) TimeOfDay {
	lt := t.In(loc)
	return TimeOfDay(lt.Hour()*60 + lt.Minute())
}

// IsActive reports whether now falls inside [start, end). When start >= end
// the window wraps past midnight, which makes start == end a full day.
func IsActive(now, start, end TimeOfDay) bool {
	if start < end {
		return now >= start && now < end
	}
	return now >= start || now < end
}

// Info describes one named session. Times are in the reference timezone.
type Info struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay
	Color string
}

func (i Info) ActiveAt(now TimeOfDay) bool {
	return IsActive(now, i.Start, i.End)
}

// Defaults are the four major FX sessions in IST.
var Defaults = []Info{
	{Name: "Sydney", Start: MustParse("03:30"), End: MustParse("12:30"), Color: "blue"},
	{Name: "Tokyo", Start: MustParse("05:30"), End: MustParse("14:30"), Color: "red"},
	{Name: "London", Start: MustParse("13:30"), End: MustParse("22:30"), Color: "green"},
	{Name: "New York", Start: MustParse("18:30"), End: MustParse("03:30"), Color: "yellow"},
}

// Lookup finds a session by name, case-insensitively.
func Lookup(infos []Info, name string) (Info, bool) {
	for _, i := range infos {
		if strings.EqualFold(i.Name, name) {
			return i, true
		}
	}
	return Info{}, false
}

// Names returns the session names in table order.
func Names(infos []Info) []string {
	out := make([]string, 0, len(infos))
	for _, i := range infos {
		out = append(out, i.Name)
	}
	return out
}
