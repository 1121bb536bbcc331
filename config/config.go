package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradedesk/journal"
	"github.com/rustyeddy/tradedesk/market"
	"github.com/rustyeddy/tradedesk/risk"
	"github.com/rustyeddy/tradedesk/session"
)

// Config represents the complete desk configuration
type Config struct {
	Clock      ClockConfig      `json:"clock" yaml:"clock"`
	Sessions   []SessionConfig  `json:"sessions" yaml:"sessions" validate:"required,min=1,dive"`
	Calculator CalculatorConfig `json:"calculator" yaml:"calculator"`
	Risk       RiskConfig       `json:"risk" yaml:"risk"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
}

// ClockConfig controls the reference clock used for session times
type ClockConfig struct {
	Timezone string `json:"timezone" yaml:"timezone" validate:"required"`
	Label    string `json:"label" yaml:"label" validate:"required"`
	Refresh  string `json:"refresh" yaml:"refresh" validate:"required"` // e.g. "1s", "30s"
}

// SessionConfig is one named market session in the reference timezone
type SessionConfig struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Start string `json:"start" yaml:"start" validate:"required,hhmm"`
	End   string `json:"end" yaml:"end" validate:"required,hhmm"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// CalculatorConfig seeds the position size calculator
type CalculatorConfig struct {
	AccountCurrency string  `json:"account_currency" yaml:"account_currency" validate:"required,len=3"`
	Balance         float64 `json:"balance" yaml:"balance" validate:"gt=0"`
	RiskPercent     float64 `json:"risk_percent" yaml:"risk_percent" validate:"gt=0,lte=100"`
	StopLossPips    float64 `json:"stop_loss_pips" yaml:"stop_loss_pips" validate:"gte=0"`
	PipValue        float64 `json:"pip_value" yaml:"pip_value" validate:"gt=0"`
}

// RiskConfig is the trader's sizing policy
type RiskConfig struct {
	DefaultRiskPercent float64 `json:"default_risk_percent" yaml:"default_risk_percent" validate:"gt=0,lte=100"`
	MaxRiskPercent     float64 `json:"max_risk_percent" yaml:"max_risk_percent" validate:"gt=0,lte=100"`
	MinRR              float64 `json:"min_rr" yaml:"min_rr" validate:"gte=0"`
}

// JournalConfig picks the store backend and the new-entry defaults
type JournalConfig struct {
	Backend   string `json:"backend" yaml:"backend" validate:"oneof=memory sqlite"`
	Pair      string `json:"pair" yaml:"pair" validate:"required"`
	Timeframe string `json:"timeframe" yaml:"timeframe" validate:"required"`
	Session   string `json:"session" yaml:"session" validate:"required"`
	FibLevel  string `json:"fib_level" yaml:"fib_level"`
}

// LoadFromFile loads configuration from a file (YAML or JSON). Keys missing
// from the file keep their Default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}

	if c.Risk.MaxRiskPercent < c.Risk.DefaultRiskPercent {
		return fmt.Errorf("risk.max_risk_percent must be at least risk.default_risk_percent")
	}
	if _, err := c.RefreshInterval(); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("clock.timezone: %w", err)
	}

	seen := map[string]bool{}
	for _, s := range c.Sessions {
		key := strings.ToLower(s.Name)
		if seen[key] {
			return fmt.Errorf("duplicate session %q", s.Name)
		}
		seen[key] = true
	}
	if !seen[strings.ToLower(c.Journal.Session)] {
		return fmt.Errorf("journal.session %q is not a configured session", c.Journal.Session)
	}
	if _, err := market.Lookup(c.Journal.Pair); err != nil {
		return fmt.Errorf("journal.pair: %w", err)
	}
	return nil
}

// RefreshInterval parses Clock.Refresh and bounds it to what the session
// watcher accepts.
func (c *Config) RefreshInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Clock.Refresh)
	if err != nil {
		return 0, fmt.Errorf("clock.refresh: %w", err)
	}
	if d < time.Second || d > session.MaxRefresh {
		return 0, fmt.Errorf("clock.refresh must be between 1s and %s", session.MaxRefresh)
	}
	return d, nil
}

func (c *Config) Location() (*time.Location, error) {
	return session.LoadLocation(c.Clock.Timezone)
}

// SessionInfos converts the session table.
func (c *Config) SessionInfos() ([]session.Info, error) {
	out := make([]session.Info, 0, len(c.Sessions))
	for _, s := range c.Sessions {
		start, err := session.ParseTimeOfDay(s.Start)
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", s.Name, err)
		}
		end, err := session.ParseTimeOfDay(s.End)
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", s.Name, err)
		}
		out = append(out, session.Info{Name: s.Name, Start: start, End: end, Color: s.Color})
	}
	return out, nil
}

func (c *Config) Policy() risk.Policy {
	return risk.Policy{
		DefaultRiskPercent: c.Risk.DefaultRiskPercent,
		MaxRiskPercent:     c.Risk.MaxRiskPercent,
		MinRR:              c.Risk.MinRR,
	}
}

func (c *Config) DraftDefaults() journal.Defaults {
	return journal.Defaults{
		Pair:      c.Journal.Pair,
		Timeframe: c.Journal.Timeframe,
		Session:   c.Journal.Session,
		FibLevel:  c.Journal.FibLevel,
	}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	sessions := make([]SessionConfig, 0, len(session.Defaults))
	for _, s := range session.Defaults {
		sessions = append(sessions, SessionConfig{
			Name:  s.Name,
			Start: s.Start.String(),
			End:   s.End.String(),
			Color: s.Color,
		})
	}

	policy := risk.DefaultPolicy()
	draft := journal.DefaultDefaults()

	return &Config{
		Clock: ClockConfig{
			Timezone: session.ReferenceTimezone,
			Label:    "IST",
			Refresh:  "1s",
		},
		Sessions: sessions,
		Calculator: CalculatorConfig{
			AccountCurrency: "USD",
			Balance:         10000,
			RiskPercent:     1,
			StopLossPips:    15,
			PipValue:        10,
		},
		Risk: RiskConfig{
			DefaultRiskPercent: policy.DefaultRiskPercent,
			MaxRiskPercent:     policy.MaxRiskPercent,
			MinRR:              policy.MinRR,
		},
		Journal: JournalConfig{
			Backend:   "memory",
			Pair:      draft.Pair,
			Timeframe: draft.Timeframe,
			Session:   draft.Session,
			FibLevel:  draft.FibLevel,
		},
	}
}
