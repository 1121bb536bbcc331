// market/instruments.go
package market

import (
	"fmt"
	"strings"
)

type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
	PipLocation   int
	ContractSize  float64 // units per standard lot

	// Rough mid used to convert pip value when the quote currency is not
	// the account currency. There is no live feed; callers may override.
	ReferenceMid float64
}

// Pairs is the journal's pair list in display order.
var Pairs = []string{"EURUSD", "GBPUSD", "USDJPY", "XAUUSD", "BTCUSD", "AUDUSD", "USDCAD", "US30"}

var Instruments = map[string]InstrumentMeta{
	"EURUSD": {Name: "EURUSD", BaseCurrency: "EUR", QuoteCurrency: "USD", PipLocation: -4, ContractSize: 100_000, ReferenceMid: 1.08},
	"GBPUSD": {Name: "GBPUSD", BaseCurrency: "GBP", QuoteCurrency: "USD", PipLocation: -4, ContractSize: 100_000, ReferenceMid: 1.27},
	"AUDUSD": {Name: "AUDUSD", BaseCurrency: "AUD", QuoteCurrency: "USD", PipLocation: -4, ContractSize: 100_000, ReferenceMid: 0.66},
	"USDJPY": {Name: "USDJPY", BaseCurrency: "USD", QuoteCurrency: "JPY", PipLocation: -2, ContractSize: 100_000, ReferenceMid: 150},
	"USDCAD": {Name: "USDCAD", BaseCurrency: "USD", QuoteCurrency: "CAD", PipLocation: -4, ContractSize: 100_000, ReferenceMid: 1.36},
	"XAUUSD": {Name: "XAUUSD", BaseCurrency: "XAU", QuoteCurrency: "USD", PipLocation: -1, ContractSize: 100, ReferenceMid: 2300},
	"BTCUSD": {Name: "BTCUSD", BaseCurrency: "BTC", QuoteCurrency: "USD", PipLocation: 0, ContractSize: 1, ReferenceMid: 60_000},
	"US30":   {Name: "US30", BaseCurrency: "US30", QuoteCurrency: "USD", PipLocation: 0, ContractSize: 1, ReferenceMid: 39_000},
}

// Lookup accepts "EURUSD", "EUR/USD", "EUR_USD" or lower case.
func Lookup(name string) (InstrumentMeta, error) {
	key := strings.ToUpper(strings.NewReplacer("/", "", "_", "", " ", "").Replace(name))
	meta, ok := Instruments[key]
	if !ok {
		return InstrumentMeta{}, fmt.Errorf("unknown instrument %s", name)
	}
	return meta, nil
}
