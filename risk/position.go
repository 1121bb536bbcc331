package risk

import (
	"math"

	"github.com/shopspring/decimal"
)

// SizeDecimals is the precision a recommended size is reported at.
const SizeDecimals = 2

// Sizing is the output of the position size calculator.
type Sizing struct {
	RiskAmount      float64 // balance * risk%, unrounded
	RecommendedSize float64 // lots, rounded to SizeDecimals
}

// PipSize returns the price increment of one pip for a pip location,
// e.g. -4 for EURUSD, -2 for USDJPY.
func PipSize(loc int) float64 {
	return math.Pow(10, float64(loc))
}

// StopPips converts an entry/stop price pair into a stop distance in pips.
func StopPips(entry, stop float64, pipLocation int) float64 {
	return math.Abs(entry-stop) / PipSize(pipLocation)
}

// ComputeSize turns an account balance, a risk percentage (1 = 1%), a stop
// distance in pips and the account-currency value of one pip per lot into
// a risk amount and a lot size.
//
// A stop distance that is zero, negative or not finite cannot be sized and
// yields a size of 0, as does a non-positive pip value. The size is never
// negative or infinite.
func ComputeSize(balance, riskPercent, stopLoss, perUnitValue float64) Sizing {
	risk := balance * (riskPercent / 100)
	if !finite(risk) {
		risk = 0
	}

	out := Sizing{RiskAmount: risk}
	if !(stopLoss > 0) || !finite(stopLoss) || !(perUnitValue > 0) || !finite(perUnitValue) {
		return out
	}

	size := risk / (stopLoss * perUnitValue)
	if !finite(size) || size <= 0 {
		return out
	}

	out.RecommendedSize = decimal.NewFromFloat(size).Round(SizeDecimals).InexactFloat64()
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
