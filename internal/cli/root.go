package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradedesk/internal/cli/config"
	"github.com/rustyeddy/tradedesk/internal/cli/guide"
	"github.com/rustyeddy/tradedesk/internal/cli/journal"
	"github.com/rustyeddy/tradedesk/internal/cli/sessions"
	"github.com/rustyeddy/tradedesk/internal/cli/size"
	"github.com/rustyeddy/tradedesk/internal/logging"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

func NewRootCmd() *cobra.Command {
	rc := &config.RootConfig{}

	cmd := &cobra.Command{
		Use:           "tradedesk",
		Short:         "Tradedesk: session clock, position sizing and a trade journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.EnvFile, "env-file", ".env", "Load TRADEDESK_* variables from this file if it exists")
	cmd.PersistentFlags().StringVar(&rc.LogLevel, "log-level", "info", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&rc.NoColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(cmd.ErrOrStderr(), rc.LogLevel, rc.NoColor)
		if err != nil {
			return err
		}
		rc.Logger = logger

		return rc.Load(os.Getenv)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = rc.Log().Sync()
	}

	// Subcommands
	cmd.AddCommand(
		sessions.New(rc),
		size.New(rc),
		journal.New(rc),
		guide.New(rc),
		newConfigCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tradedesk (%s)\n", Version)
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
