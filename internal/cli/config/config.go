// Package config carries the root command's persistent flags and the
// state they resolve to, shared by every subcommand.
package config

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	desk "github.com/rustyeddy/tradedesk/config"
	"github.com/rustyeddy/tradedesk/internal/logging"
)

type RootConfig struct {
	ConfigPath string
	EnvFile    string
	LogLevel   string
	NoColor    bool

	// Set by Load.
	Desk   *desk.Config
	Logger *zap.Logger
}

// Load reads the .env file, the optional config file and the TRADEDESK_*
// overrides, in that order.
func (rc *RootConfig) Load(getenv func(string) string) error {
	if err := desk.LoadDotEnv(rc.EnvFile); err != nil {
		return err
	}

	cfg := desk.Default()
	if rc.ConfigPath != "" {
		loaded, err := desk.LoadFromFile(rc.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	rc.Desk = cfg
	return nil
}

// Config returns the loaded configuration, or the defaults when Load has
// not run (as in tests that build a subcommand directly).
func (rc *RootConfig) Config() *desk.Config {
	if rc.Desk == nil {
		rc.Desk = desk.Default()
	}
	return rc.Desk
}

func (rc *RootConfig) Log() *zap.Logger {
	if rc.Logger == nil {
		return zap.NewNop()
	}
	return rc.Logger
}

// Colorize reports whether output to w may use ANSI colors.
func (rc *RootConfig) Colorize(w io.Writer) bool {
	if rc.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return logging.IsTerminal(w)
}
