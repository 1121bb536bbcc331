package risk

import "math"

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// PlannedRisk is the account-currency loss if a position of size lots is
// stopped out stopPips away. It is the inverse of ComputeSize and shows
// what the rounded size actually risks.
func PlannedRisk(size, stopPips, pipValue float64) float64 {
	return abs(size) * abs(stopPips) * pipValue
}

// RR is reward over risk for an entry, stop and take-profit price.
func RR(entry, stop, takeProfit float64) float64 {
	risk := abs(entry - stop)
	reward := abs(takeProfit - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}

// RiskPercent expresses a risk amount as a percentage of balance. A
// balance of zero or below has no meaningful percentage and yields 0.
func RiskPercent(amount, balance float64) float64 {
	if !(balance > 0) {
		return 0
	}
	pct := 100 * amount / balance
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return pct
}
