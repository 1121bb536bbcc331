package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// EnvPrefix namespaces environment overrides.
const EnvPrefix = "TRADEDESK_"

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ".env")
// into the process environment. Missing files are ignored; variables that
// are already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides selected fields from TRADEDESK_* variables read via
// getenv (normally os.Getenv).
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := map[string]*string{
		"TIMEZONE":         &c.Clock.Timezone,
		"CLOCK_LABEL":      &c.Clock.Label,
		"REFRESH":          &c.Clock.Refresh,
		"ACCOUNT_CURRENCY": &c.Calculator.AccountCurrency,
		"BACKEND":          &c.Journal.Backend,
		"PAIR":             &c.Journal.Pair,
	}
	for key, dst := range str {
		if v := getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}

	num := map[string]*float64{
		"BALANCE":        &c.Calculator.Balance,
		"RISK_PERCENT":   &c.Calculator.RiskPercent,
		"STOP_LOSS_PIPS": &c.Calculator.StopLossPips,
		"PIP_VALUE":      &c.Calculator.PipValue,
		"MAX_RISK":       &c.Risk.MaxRiskPercent,
		"MIN_RR":         &c.Risk.MinRR,
	}
	for key, dst := range num {
		v := getenv(EnvPrefix + key)
		if v == "" {
			continue
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = f
	}
	return nil
}
