package journal

import (
	"fmt"
	"strings"
)

// Defaults seed a fresh Draft.
type Defaults struct {
	Pair      string
	Timeframe string
	Session   string
	FibLevel  string
}

func DefaultDefaults() Defaults {
	return Defaults{
		Pair:      "EURUSD",
		Timeframe: "15m",
		Session:   "London",
		FibLevel:  FibNone,
	}
}

// Draft is the pending entry being filled in before it is saved.
type Draft struct {
	defaults Defaults
	cur      TradeEntry
}

func NewDraft(d Defaults) *Draft {
	dr := &Draft{defaults: d}
	dr.Reset()
	return dr
}

// Reset discards everything typed so far.
func (d *Draft) Reset() {
	d.cur = TradeEntry{
		Pair:        d.defaults.Pair,
		Timeframe:   d.defaults.Timeframe,
		Session:     d.defaults.Session,
		FibLevel:    d.defaults.FibLevel,
		Confluences: []string{},
		Bias:        []Bias{},
	}
}

// Set assigns a text field by name.
func (d *Draft) Set(field, value string) error {
	switch strings.ToLower(field) {
	case "pair":
		d.cur.Pair = strings.ToUpper(value)
	case "timeframe", "tf":
		d.cur.Timeframe = value
	case "session":
		d.cur.Session = value
	case "fib", "fiblevel", "fib_level":
		d.cur.FibLevel = value
	case "comments", "comment":
		d.cur.Comments = value
	case "mistakes", "mistake":
		d.cur.Mistakes = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// ToggleBias adds b if absent, removes it if present.
func (d *Draft) ToggleBias(b Bias) {
	d.cur.Bias = toggle(d.cur.Bias, b)
}

// ToggleConfluence adds c if absent, removes it if present.
func (d *Draft) ToggleConfluence(c string) {
	d.cur.Confluences = toggle(d.cur.Confluences, c)
}

// Entry returns a copy of the pending entry.
func (d *Draft) Entry() TradeEntry {
	return d.cur.clone()
}

func toggle[T comparable](set []T, v T) []T {
	for i, x := range set {
		if x == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, v)
}
