// journal/journal.go
package journal

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the bucket key format.
const DateLayout = "2006-01-02"

// AllSessions is the List filter that matches every session.
const AllSessions = "All"

type Bias string

const (
	Buy  Bias = "Buy"
	Sell Bias = "Sell"
)

// ParseBias accepts buy/sell in any case.
func ParseBias(s string) (Bias, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "b", "long":
		return Buy, nil
	case "sell", "s", "short":
		return Sell, nil
	}
	return "", fmt.Errorf("unknown bias %q (want buy or sell)", s)
}

// TradeEntry is one logged trade. ID and Date are assigned by the store.
type TradeEntry struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Pair        string   `json:"pair"`
	Timeframe   string   `json:"timeframe"`
	Session     string   `json:"session"`
	FibLevel    string   `json:"fibLevel,omitempty"`
	Confluences []string `json:"confluences"`
	Bias        []Bias   `json:"bias"`
	Comments    string   `json:"comments"`
	Mistakes    string   `json:"mistakes"`

	// Media references. Nothing in this tool captures media, so these are
	// carried through but never set.
	Screenshot   string `json:"screenshot,omitempty"`
	VoiceNoteURL string `json:"voiceNoteUrl,omitempty"`
}

func (e TradeEntry) HasBias(b Bias) bool {
	for _, x := range e.Bias {
		if x == b {
			return true
		}
	}
	return false
}

// Marker picks the calendar dot for an entry: Buy wins whenever present.
func (e TradeEntry) Marker() Bias {
	if e.HasBias(Buy) {
		return Buy
	}
	return Sell
}

// normalized returns a deep copy with duplicate set members removed.
func (e TradeEntry) normalized() TradeEntry {
	e.Confluences = dedupe(e.Confluences)
	e.Bias = dedupe(e.Bias)
	return e
}

func (e TradeEntry) clone() TradeEntry {
	e.Confluences = cloneSlice(e.Confluences)
	e.Bias = cloneSlice(e.Bias)
	return e
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func dedupe[T comparable](in []T) []T {
	out := make([]T, 0, len(in))
	seen := make(map[T]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// DateKey formats t as a bucket key in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Store is the trade log: entries bucketed by date, append ordered.
type Store interface {
	// Add stamps a fresh id and date onto e and appends it to date's bucket.
	Add(date string, e TradeEntry) (TradeEntry, error)
	// Remove deletes id from date's bucket. Missing ids are not an error.
	Remove(date, id string) error
	// List returns date's entries whose session equals session, or all of
	// them for AllSessions, in insertion order.
	List(date, session string) ([]TradeEntry, error)
	// Has reports whether date has at least one entry.
	Has(date string) (bool, error)
	// Dates lists dates with entries in ascending order.
	Dates() ([]string, error)
	Close() error
}

func matchSession(filter, session string) bool {
	return filter == AllSessions || filter == session
}
