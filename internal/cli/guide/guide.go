package guide

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradedesk/guide"
	"github.com/rustyeddy/tradedesk/internal/cli/config"
)

func New(rc *config.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:       "guide [section...]",
		Short:     "Print the risk management playbook",
		Long:      "Print the playbook, or only the named sections: " + strings.Join(guide.Keys(), ", ") + ".",
		ValidArgs: guide.Keys(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rc.Config()
			infos, err := cfg.SessionInfos()
			if err != nil {
				return err
			}

			text, err := guide.Render(guide.NewParams(infos, cfg.Policy(), cfg.Clock.Label), args...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}
