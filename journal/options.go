package journal

import (
	"go.uber.org/zap"

	"github.com/rustyeddy/tradedesk/pkg/id"
)

// FibNone is the "no retracement level" choice.
const FibNone = "None"

var (
	Timeframes = []string{"1m", "3m", "5m", "15m", "1h", "4h", "D1", "W1"}
	FibLevels  = []string{FibNone, "FIB 0.5", "FIB 0.7", "FIB 0.786"}

	Confluences = []string{
		"Support S1",
		"Support S2",
		"Support S3",
		"Support S4",
		"Resistance R1",
		"Resistance R2",
		"Resistance R3",
		"Resistance R4",
		"Failure to hold highs",
		"Failure to hold LOW",
		"Supply/Demand Zone",
		"Liquidity Sweep",
		"Pivot Level Bounce",
	}
)

// maxIDAttempts bounds id regeneration on collision.
const maxIDAttempts = 8

type storeOptions struct {
	newID  id.Source
	logger *zap.Logger
}

// Option configures a Store backend.
type Option func(*storeOptions)

// WithIDSource replaces the ULID generator.
func WithIDSource(src id.Source) Option {
	return func(o *storeOptions) { o.newID = src }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *storeOptions) { o.logger = l }
}

func buildOptions(opts []Option) storeOptions {
	o := storeOptions{newID: id.New, logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.newID == nil {
		o.newID = id.New
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}
