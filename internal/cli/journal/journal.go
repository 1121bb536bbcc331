package journal

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradedesk/internal/cli/config"
	"github.com/rustyeddy/tradedesk/internal/logging"
	"github.com/rustyeddy/tradedesk/journal"
	"github.com/rustyeddy/tradedesk/session"
)

func New(rc *config.RootConfig) *cobra.Command {
	var (
		dateStr string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Interactive trade journal for the current process",
		Long: `Open a journal shell on a date. Commands are read one per line from
stdin; type "help" for the list. Entries live only as long as the shell.`,
		Example: `  tradedesk journal
  tradedesk journal --date 2025-03-10 --backend sqlite
  printf 'bias buy\nconf 1\nsave\nls\n' | tradedesk journal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rc.Config()
			log := rc.Log()

			loc, err := cfg.Location()
			if err != nil {
				return err
			}
			today := func() time.Time { return time.Now().In(loc) }

			date := today()
			if dateStr != "" {
				date, err = time.Parse(journal.DateLayout, dateStr)
				if err != nil {
					return fmt.Errorf("bad --date %q: want YYYY-MM-DD", dateStr)
				}
			}

			if backend == "" {
				backend = cfg.Journal.Backend
			}
			store, err := openStore(backend, log)
			if err != nil {
				return err
			}
			defer store.Close()

			infos, err := cfg.SessionInfos()
			if err != nil {
				return err
			}

			sh := NewShell(store, cfg.DraftDefaults(), session.Names(infos), date, cmd.OutOrStdout(), log)
			sh.Today = today
			sh.Color = rc.Colorize(cmd.OutOrStdout())
			if f, ok := cmd.InOrStdin().(*os.File); ok {
				sh.Prompt = logging.IsTerminal(f)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Debug("journal shell", zap.String("backend", backend), zap.String("date", sh.Date()))
			return sh.Run(ctx, cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Start on this day (YYYY-MM-DD, default today on the reference clock)")
	cmd.Flags().StringVar(&backend, "backend", "", "Store backend: memory|sqlite (default from config)")

	return cmd
}

func openStore(backend string, log *zap.Logger) (journal.Store, error) {
	switch backend {
	case "memory":
		return journal.NewMemStore(journal.WithLogger(log)), nil
	case "sqlite":
		s, err := journal.NewSQLite(journal.WithLogger(log))
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown backend %q (want memory or sqlite)", backend)
}
