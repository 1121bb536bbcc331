package size

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradedesk/internal/cli/config"
	"github.com/rustyeddy/tradedesk/internal/cli/output"
	"github.com/rustyeddy/tradedesk/market"
	"github.com/rustyeddy/tradedesk/risk"
)

func New(rc *config.RootConfig) *cobra.Command {
	var (
		balance   float64
		riskPct   float64
		stopPips  float64
		pipValue  float64
		pair      string
		mid       float64
		entry     float64
		stopPrice float64
		target    float64
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Position size calculator",
		Long: `Compute the risk amount and recommended lot size for a trade.

Unset flags fall back to the calculator section of the config. With --pair
the pip value is derived from the instrument, and with --entry and
--stop-price the stop distance is measured in that instrument's pips.`,
		Example: `  tradedesk size --balance 10000 --risk 1 --stop 15
  tradedesk size --pair USDJPY --entry 151.20 --stop-price 150.90 --target 152.10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rc.Config()
			flags := cmd.Flags()
			if !flags.Changed("balance") {
				balance = cfg.Calculator.Balance
			}
			if !flags.Changed("risk") {
				riskPct = cfg.Calculator.RiskPercent
			}
			if !flags.Changed("stop") {
				stopPips = cfg.Calculator.StopLossPips
			}
			if !flags.Changed("pip-value") {
				pipValue = cfg.Calculator.PipValue
			}
			currency := cfg.Calculator.AccountCurrency

			if pair != "" {
				meta, err := market.Lookup(pair)
				if err != nil {
					return err
				}
				if !flags.Changed("pip-value") {
					pipValue, err = market.PipValue(meta.Name, currency, mid)
					if err != nil {
						return err
					}
				}
				if !flags.Changed("stop") && entry != 0 && stopPrice != 0 {
					stopPips = risk.StopPips(entry, stopPrice, meta.PipLocation)
				}
			}

			plan := risk.Plan{
				Balance:      balance,
				RiskPercent:  riskPct,
				StopLossPips: stopPips,
				PipValue:     pipValue,
				Entry:        entry,
				Stop:         stopPrice,
				TakeProfit:   target,
			}
			d := risk.Evaluate(cfg.Policy(), plan)

			rc.Log().Debug("sized",
				zap.Float64("stop_pips", stopPips),
				zap.Float64("pip_value", pipValue),
				zap.Float64("size", d.RecommendedSize),
				zap.Int("violations", len(d.Violations)))

			if asJSON {
				return output.JSON(cmd.OutOrStdout(), newView(plan, d))
			}
			return writeText(cmd.OutOrStdout(), plan, d, currency)
		},
	}

	cmd.Flags().Float64Var(&balance, "balance", 0, "Account balance")
	cmd.Flags().Float64Var(&riskPct, "risk", 0, "Risk per trade in percent (1 = 1%)")
	cmd.Flags().Float64Var(&stopPips, "stop", 0, "Stop loss distance in pips")
	cmd.Flags().Float64Var(&pipValue, "pip-value", 0, "Account-currency value of one pip per lot")
	cmd.Flags().StringVar(&pair, "pair", "", "Instrument used to derive pip value and stop distance")
	cmd.Flags().Float64Var(&mid, "mid", 0, "Current mid price for pip value conversion (default: reference price)")
	cmd.Flags().Float64Var(&entry, "entry", 0, "Planned entry price")
	cmd.Flags().Float64Var(&stopPrice, "stop-price", 0, "Planned stop price")
	cmd.Flags().Float64Var(&target, "target", 0, "Planned take-profit price")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")

	return cmd
}

type violationView struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

type view struct {
	StopLossPips       float64         `json:"stopLossPips"`
	PipValue           float64         `json:"pipValue"`
	RiskAmount         float64         `json:"riskAmount"`
	RecommendedSize    float64         `json:"recommendedSize"`
	PlannedRisk        float64         `json:"plannedRisk"`
	PlannedRiskPercent float64         `json:"plannedRiskPercent"`
	RR                 float64         `json:"rr,omitempty"`
	Allowed            bool            `json:"allowed"`
	Violations         []violationView `json:"violations"`
}

func newView(p risk.Plan, d risk.Decision) view {
	v := view{
		StopLossPips:       p.StopLossPips,
		PipValue:           p.PipValue,
		RiskAmount:         d.RiskAmount,
		RecommendedSize:    d.RecommendedSize,
		PlannedRisk:        d.PlannedRisk,
		PlannedRiskPercent: d.PlannedRiskPercent,
		RR:                 d.PlannedRR,
		Allowed:            d.Allowed,
		Violations:         []violationView{},
	}
	for _, x := range d.Violations {
		v.Violations = append(v.Violations, violationView{Code: x.Code, Msg: x.Msg})
	}
	return v
}

func writeText(w io.Writer, p risk.Plan, d risk.Decision, currency string) error {
	fmt.Fprintf(w, "Risk amount:       %s\n", output.Money(d.RiskAmount, currency))
	fmt.Fprintf(w, "Recommended size:  %.2f lots\n", d.RecommendedSize)
	fmt.Fprintf(w, "Stop:              %.1f pips @ %s/pip\n", p.StopLossPips, output.Money(p.PipValue, currency))
	if d.RecommendedSize > 0 {
		fmt.Fprintf(w, "Planned risk:      %s (%.2f%%)\n", output.Money(d.PlannedRisk, currency), d.PlannedRiskPercent)
	}
	if d.PlannedRR > 0 {
		fmt.Fprintf(w, "Risk/reward:       1:%.2f\n", d.PlannedRR)
	}
	for _, x := range d.Violations {
		if _, err := fmt.Fprintf(w, "! %-18s %s\n", x.Code, x.Msg); err != nil {
			return err
		}
	}
	return nil
}
