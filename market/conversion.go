package market

import (
	"fmt"
	"math"
)

// QuoteToAccountRate returns how much one unit of the instrument's quote
// currency is worth in accountCurrency, given the instrument's mid price.
func QuoteToAccountRate(instrument string, accountCurrency string, mid float64) (float64, error) {
	meta, err := Lookup(instrument)
	if err != nil {
		return 0, err
	}

	// Case 1: quote currency == account currency (EURUSD, XAUUSD, ...)
	if meta.QuoteCurrency == accountCurrency {
		return 1.0, nil
	}

	// Case 2: account currency is base (USDJPY, USDCAD). The mid is quote
	// per base, so invert it.
	if meta.BaseCurrency == accountCurrency {
		if mid <= 0 {
			mid = meta.ReferenceMid
		}
		if mid <= 0 {
			return 0, fmt.Errorf("no price to convert %s to %s", meta.QuoteCurrency, accountCurrency)
		}
		return 1.0 / mid, nil
	}

	return 0, fmt.Errorf(
		"cross conversion not implemented for %s → %s",
		meta.QuoteCurrency,
		accountCurrency,
	)
}

// PipValue is the account-currency value of a one pip move on one standard
// lot. A mid of 0 falls back to the instrument's reference mid.
func PipValue(instrument string, accountCurrency string, mid float64) (float64, error) {
	meta, err := Lookup(instrument)
	if err != nil {
		return 0, err
	}
	rate, err := QuoteToAccountRate(instrument, accountCurrency, mid)
	if err != nil {
		return 0, err
	}
	return math.Pow(10, float64(meta.PipLocation)) * meta.ContractSize * rate, nil
}
