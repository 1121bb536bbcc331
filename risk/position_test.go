package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		loc  int
		want float64
	}{
		{"zero", 0, 1},
		{"negative2", -2, 0.01},
		{"positive1", 1, 10},
		{"negative4", -4, 0.0001},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, PipSize(tt.loc), 1e-12)
		})
	}
}

func TestStopPips(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 15.0, StopPips(1.08500, 1.08350, -4), 1e-6)
	assert.InDelta(t, 50.0, StopPips(150.00, 150.50, -2), 1e-6)
}

func TestComputeSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                          string
		balance, riskPct, stop, value float64
		wantRisk, wantSize            float64
	}{
		{"reference example", 10000, 1, 15, 10, 100, 0.67},
		{"zero stop", 10000, 1, 0, 10, 100, 0},
		{"negative stop clamps", 10000, 1, -15, 10, 100, 0},
		{"zero pip value", 10000, 1, 15, 0, 100, 0},
		{"exact lots", 50000, 2, 20, 10, 1000, 5},
		{"rounds half up", 10000, 1, 16, 10, 100, 0.63},
		{"risk unrounded", 12345, 0.5, 10, 10, 61.725, 0.62},
		{"negative balance", -10000, 1, 15, 10, -100, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeSize(tt.balance, tt.riskPct, tt.stop, tt.value)
			assert.InDelta(t, tt.wantRisk, got.RiskAmount, 1e-9)
			assert.InDelta(t, tt.wantSize, got.RecommendedSize, 1e-9)
		})
	}
}

func TestComputeSizeNonFinite(t *testing.T) {
	t.Parallel()

	got := ComputeSize(10000, 1, math.NaN(), 10)
	assert.Zero(t, got.RecommendedSize)

	got = ComputeSize(10000, 1, math.Inf(1), 10)
	assert.Zero(t, got.RecommendedSize)

	got = ComputeSize(math.Inf(1), 1, 15, 10)
	assert.Zero(t, got.RiskAmount)
	assert.Zero(t, got.RecommendedSize)

	got = ComputeSize(10000, math.NaN(), 15, 10)
	assert.Zero(t, got.RiskAmount)
	assert.Zero(t, got.RecommendedSize)
}

func TestComputeSizeIsDeterministic(t *testing.T) {
	t.Parallel()

	a := ComputeSize(25000, 1.5, 22, 9.3)
	b := ComputeSize(25000, 1.5, 22, 9.3)
	assert.Equal(t, a, b)
}
