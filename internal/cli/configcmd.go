package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	desk "github.com/rustyeddy/tradedesk/config"
	"github.com/rustyeddy/tradedesk/internal/cli/config"
	"github.com/rustyeddy/tradedesk/internal/cli/output"
)

func newConfigCmd(rc *config.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate, validate or print configuration",
		Long: `Manage the desk configuration file.

Subcommands:
  init     - Write a default configuration file
  validate - Check a configuration file
  show     - Print the effective configuration (file + TRADEDESK_* overrides)`,
	}

	cmd.AddCommand(
		newConfigInitCmd(),
		newConfigValidateCmd(),
		newConfigShowCmd(rc),
	)
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		outPath string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(outPath); err == nil {
					return fmt.Errorf("%s exists (use --force to overwrite)", outPath)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			if err := desk.Default().SaveToFile(outPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", outPath)
			fmt.Fprintf(cmd.OutOrStdout(), "  Use it with: tradedesk --config %s sessions\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "tradedesk.yaml", "Output config file path (.yaml or .json)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := desk.LoadFromFile(path)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "✓ Configuration valid: %s\n", path)
			fmt.Fprintf(w, "  Clock: %s (%s), refresh %s\n", cfg.Clock.Timezone, cfg.Clock.Label, cfg.Clock.Refresh)
			fmt.Fprintf(w, "  Sessions: %d\n", len(cfg.Sessions))
			fmt.Fprintf(w, "  Calculator: %s, risk %.2f%%\n", output.Money(cfg.Calculator.Balance, cfg.Calculator.AccountCurrency), cfg.Calculator.RiskPercent)
			fmt.Fprintf(w, "  Journal: %s\n", cfg.Journal.Backend)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Path to config file (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newConfigShowCmd(rc *config.RootConfig) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rc.Config()
			if asJSON {
				return output.JSON(cmd.OutOrStdout(), cfg)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of YAML")
	return cmd
}
