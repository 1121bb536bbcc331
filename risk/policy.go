package risk

// Policy holds the trader's own sizing rules. Percentages are in percent
// units (1 = 1%).
type Policy struct {
	DefaultRiskPercent float64 // 1
	MaxRiskPercent     float64 // 2
	MinRR              float64 // 2.0, the fixed 1:2 take-profit rule
}

// DefaultPolicy mirrors the quantity-management guidance.
func DefaultPolicy() Policy {
	return Policy{
		DefaultRiskPercent: 1,
		MaxRiskPercent:     2,
		MinRR:              2,
	}
}

// Plan is a sized trade idea awaiting a policy decision.
type Plan struct {
	Balance      float64
	RiskPercent  float64
	StopLossPips float64
	PipValue     float64

	// Optional prices; RR is only checked when all three are set.
	Entry      float64
	Stop       float64
	TakeProfit float64
}
