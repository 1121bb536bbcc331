// Package output holds the formatting shared by the subcommands.
package output

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"
)

// JSON writes v as indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	b, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// Money formats an amount with thousands separators and two decimals,
// e.g. "10,000.00 USD".
func Money(amount float64, currency string) string {
	s := humanize.FormatFloat("#,###.##", amount)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// Minutes renders a minute count as "3h05m".
func Minutes(n int) string {
	return fmt.Sprintf("%dh%02dm", n/60, n%60)
}

var ansi = map[string]string{
	"red":    "31",
	"green":  "32",
	"yellow": "33",
	"blue":   "34",
	"bold":   "1",
}

// Paint wraps s in the ANSI code for color when enabled. Unknown colors
// are left plain.
func Paint(enabled bool, color, s string) string {
	code, ok := ansi[color]
	if !enabled || !ok {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
