// Package guide holds the trader's static risk-management playbook.
package guide

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/rustyeddy/tradedesk/risk"
	"github.com/rustyeddy/tradedesk/session"
)

type Section struct {
	Key   string
	Title string
	Body  string // fasttemplate text with {{tag}} placeholders
}

var Sections = []Section{
	{
		Key:   "strategy",
		Title: "Core Execution Strategy",
		Body: `NY Market Open Reversal  [HIGH PROBABILITY SETUP]
  After the New York market opens ({{ny_open}} {{tz}}), monitor for a sharp
  reversal entry. Look for liquidity sweeps of the initial open high/low.

Pivot Level Mastery
  Proper Buy/Sell execution at standard Pivot levels:
    BUY:  Support S1 or S2
    SELL: Resistance R1 or R2

Fibonacci Retracement
  Wait for one-sided directional movement. Plan entries on retracement levels:
    {{fib_levels}}
`,
	},
	{
		Key:   "quantity",
		Title: "Quantity Management",
		Body: `The "100% Rule"
  Deploy 100% quantity ONLY on the following conditions:
    1. NY Market Open + Clear Reversal
    2. Pivot Point Standard Levels (S1/S2/R1/R2)
    3. Double Top / Double Bottom Patterns
    4. Fibonacci Levels ({{fib_levels}})

  Risk {{default_risk}}% of balance per trade by default, never more than {{max_risk}}%.
`,
	},
	{
		Key:   "exit",
		Title: "Exit Strategy (TP/SL)",
		Body: `Stop Loss Protocol
  Implement strict stop loss measures immediately upon execution. No mental
  stops. Protect capital at all costs.

Take Profit Strategy
  Your Take Profit (TP) should be set at one of these levels:
    - Next Swing Point
    - Fixed 1:{{min_rr}} Risk/Reward
    - Next Pivot Level
    - Next Round Number

Partial Management
  Always consider partial profit booking as per timeframe levels to de-risk
  the position once moving in favor.
`,
	},
}

// Params are the values substituted into the playbook.
type Params struct {
	Timezone  string
	NYOpen    string
	FibLevels []string
	Policy    risk.Policy
}

// NewParams derives placeholder values from the session table and policy.
func NewParams(infos []session.Info, policy risk.Policy, tzLabel string) Params {
	p := Params{
		Timezone:  tzLabel,
		NYOpen:    "18:30",
		FibLevels: []string{"0.5", "0.7", "0.786"},
		Policy:    policy,
	}
	if ny, ok := session.Lookup(infos, "New York"); ok {
		p.NYOpen = ny.Start.String()
	}
	return p
}

func (p Params) tags() map[string]string {
	return map[string]string{
		"tz":           p.Timezone,
		"ny_open":      p.NYOpen,
		"fib_levels":   strings.Join(p.FibLevels, ", "),
		"default_risk": trimFloat(p.Policy.DefaultRiskPercent),
		"max_risk":     trimFloat(p.Policy.MaxRiskPercent),
		"min_rr":       trimFloat(p.Policy.MinRR),
	}
}

// Render renders the named sections, or all of them when keys is empty.
func Render(p Params, keys ...string) (string, error) {
	tags := p.tags()
	tagFn := func(w io.Writer, tag string) (int, error) {
		v, ok := tags[tag]
		if !ok {
			return 0, fmt.Errorf("unknown placeholder %q", tag)
		}
		return w.Write([]byte(v))
	}

	var b strings.Builder
	for _, s := range pick(keys) {
		t, err := fasttemplate.NewTemplate(s.Body, "{{", "}}")
		if err != nil {
			return "", fmt.Errorf("section %s: %w", s.Key, err)
		}
		body, err := t.ExecuteFuncStringWithErr(tagFn)
		if err != nil {
			return "", fmt.Errorf("section %s: %w", s.Key, err)
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("== " + s.Title + " ==\n\n")
		b.WriteString(body)
	}
	return b.String(), nil
}

func pick(keys []string) []Section {
	if len(keys) == 0 {
		return Sections
	}
	var out []Section
	for _, k := range keys {
		for _, s := range Sections {
			if strings.EqualFold(s.Key, k) {
				out = append(out, s)
			}
		}
	}
	return out
}

// Keys lists the section keys.
func Keys() []string {
	out := make([]string, 0, len(Sections))
	for _, s := range Sections {
		out = append(out, s.Key)
	}
	return out
}

func trimFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}
