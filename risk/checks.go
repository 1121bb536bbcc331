package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

type Decision struct {
	Allowed    bool
	Violations []Violation

	Sizing
	PlannedRisk        float64 // risk of the rounded size
	PlannedRiskPercent float64
	PlannedRR          float64
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate sizes the plan and checks it against the policy. Violations are
// advisory: the caller decides whether to take the trade anyway.
func Evaluate(p Policy, plan Plan) Decision {
	d := Decision{Allowed: true}
	d.Sizing = ComputeSize(plan.Balance, plan.RiskPercent, plan.StopLossPips, plan.PipValue)

	if plan.StopLossPips <= 0 {
		d.add("NO_STOP", "stop loss distance must be set; no mental stops")
		return d
	}

	d.PlannedRisk = PlannedRisk(d.RecommendedSize, plan.StopLossPips, plan.PipValue)
	d.PlannedRiskPercent = RiskPercent(d.PlannedRisk, plan.Balance)

	if d.RecommendedSize == 0 {
		d.add("SIZE_ZERO", "risk budget too small for this stop")
	}

	if plan.RiskPercent > p.MaxRiskPercent {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("risk %.2f%% exceeds max %.2f%%", plan.RiskPercent, p.MaxRiskPercent))
	} else if plan.RiskPercent > p.DefaultRiskPercent {
		d.add("RISK_OVER_DEFAULT",
			fmt.Sprintf("risk %.2f%% exceeds default %.2f%% (requires override)",
				plan.RiskPercent, p.DefaultRiskPercent))
	}

	if plan.Entry != 0 && plan.Stop != 0 && plan.TakeProfit != 0 {
		d.PlannedRR = RR(plan.Entry, plan.Stop, plan.TakeProfit)
		if d.PlannedRR < p.MinRR {
			d.add("RR_TOO_LOW",
				fmt.Sprintf("RR %.2f below minimum %.2f", d.PlannedRR, p.MinRR))
		}
	}

	return d
}
