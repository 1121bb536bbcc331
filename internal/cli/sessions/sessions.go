package sessions

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradedesk/internal/cli/config"
	"github.com/rustyeddy/tradedesk/internal/cli/output"
	"github.com/rustyeddy/tradedesk/session"
)

func New(rc *config.RootConfig) *cobra.Command {
	var (
		at     string
		watch  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Show which market sessions are open on the reference clock",
		Example: `  tradedesk sessions
  tradedesk sessions --at 19:30
  tradedesk sessions --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rc.Config()
			infos, err := cfg.SessionInfos()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			var clock session.Clock = session.SystemClock{}
			if at != "" {
				tod, err := session.ParseTimeOfDay(at)
				if err != nil {
					return fmt.Errorf("bad --at: %w", err)
				}
				clock = fixedAt(time.Now(), loc, tod)
			}

			out := cmd.OutOrStdout()
			r := renderer{w: out, label: cfg.Clock.Label, json: asJSON, color: rc.Colorize(out)}

			if !watch {
				return r.render(session.Evaluate(clock, loc, infos))
			}

			every, err := cfg.RefreshInterval()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := session.NewWatcher(clock, loc, infos, every, func(s session.Snapshot) {
				if r.color {
					fmt.Fprint(out, "\x1b[H\x1b[2J")
				}
				if err := r.render(s); err != nil {
					rc.Log().Sugar().Warnf("render sessions: %v", err)
				}
			}, rc.Log())
			if err != nil {
				return err
			}
			w.Run(ctx)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Evaluate at this HH:MM on the reference clock instead of now")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep refreshing until interrupted")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.MarkFlagsMutuallyExclusive("at", "watch")

	return cmd
}

// fixedAt pins the clock to tod on today's date in loc.
func fixedAt(now time.Time, loc *time.Location, tod session.TimeOfDay) session.FixedClock {
	d := now.In(loc)
	return session.FixedClock(time.Date(d.Year(), d.Month(), d.Day(), int(tod)/60, int(tod)%60, 0, 0, loc))
}

type statusView struct {
	Name   string `json:"name"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
	Until  int    `json:"minutesUntil"`
}

type boardView struct {
	At       time.Time    `json:"at"`
	Clock    string       `json:"clock"`
	Active   []string     `json:"active"`
	Sessions []statusView `json:"sessions"`
}

type renderer struct {
	w     io.Writer
	label string
	json  bool
	color bool
}

func (r renderer) render(s session.Snapshot) error {
	if r.json {
		v := boardView{At: s.At, Clock: s.Now.String(), Active: s.ActiveNames()}
		if v.Active == nil {
			v.Active = []string{}
		}
		for _, st := range s.Statuses {
			v.Sessions = append(v.Sessions, statusView{
				Name:   st.Name,
				Start:  st.Start.String(),
				End:    st.End.String(),
				Active: st.Active,
				Until:  st.Until,
			})
		}
		return output.JSON(r.w, v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.label, s.Now)
	for _, st := range s.Statuses {
		name := fmt.Sprintf("%-10s", st.Name)
		state, next := "closed", "opens in "
		if st.Active {
			name = output.Paint(r.color, st.Color, name)
			state, next = output.Paint(r.color, "bold", "OPEN  "), "closes in "
		}
		fmt.Fprintf(&b, "  %s %s-%s  %s  %s%s\n",
			name, st.Start, st.End, state, next, output.Minutes(st.Until))
	}
	if active := s.ActiveNames(); len(active) > 0 {
		fmt.Fprintf(&b, "Active: %s\n", strings.Join(active, ", "))
	} else {
		b.WriteString("Active: none\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}
