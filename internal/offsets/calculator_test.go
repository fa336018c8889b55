package offsets_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/offsets"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		in        offsets.Input
		wantKg    float64
		wantCost  float64
		wantTrees int64
	}{
		{
			name:      "custom",
			in:        offsets.Input{Mode: offsets.ModeCustom, CustomKg: 5750},
			wantKg:    5750,
			wantCost:  115,
			wantTrees: 262,
		},
		{
			name:      "transport",
			in:        offsets.Input{Mode: offsets.ModeTransport, CarMiles: 1000, FlightHours: 4},
			wantKg:    1400,
			wantCost:  28,
			wantTrees: 64,
		},
		{
			name:      "home",
			in:        offsets.Input{Mode: offsets.ModeHome, MonthlyKWh: 900},
			wantKg:    10800,
			wantCost:  216,
			wantTrees: 491,
		},
		{
			name:      "blank mode is custom",
			in:        offsets.Input{CustomKg: 22},
			wantKg:    22,
			wantCost:  0.44,
			wantTrees: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := offsets.Calculate(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKg, got.TotalKg, 1e-9)
			assert.InDelta(t, tt.wantCost, got.Cost, 1e-9)
			assert.Equal(t, tt.wantTrees, got.Trees)
		})
	}
}

func TestCalculate_NoEmissions(t *testing.T) {
	for _, in := range []offsets.Input{
		{Mode: offsets.ModeCustom},
		{Mode: offsets.ModeCustom, CustomKg: -10},
		{Mode: offsets.ModeTransport, CarMiles: math.NaN()},
		{Mode: offsets.ModeHome, CustomKg: 500},
	} {
		_, err := offsets.Calculate(in)
		require.ErrorIs(t, err, offsets.ErrNoEmissions)
	}

	_, err := offsets.Calculate(offsets.Input{Mode: "boat", CustomKg: 1})
	require.ErrorIs(t, err, offsets.ErrUnknownMode)
}

func TestCalculator_CustomPricing(t *testing.T) {
	c := offsets.NewCalculator(0.05, 20)
	got, err := c.Calculate(offsets.Input{Mode: offsets.ModeCustom, CustomKg: 100})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got.Cost, 1e-9)
	assert.Equal(t, int64(5), got.Trees)

	def := offsets.NewCalculator(-1, 0)
	assert.InDelta(t, offsets.DefaultPricePerKg, def.PricePerKg, 0)
	assert.InDelta(t, 22.0, def.KgPerTree, 0)
}

func TestParseMode(t *testing.T) {
	m, err := offsets.ParseMode(" Transport ")
	require.NoError(t, err)
	assert.Equal(t, offsets.ModeTransport, m)

	_, err = offsets.ParseMode("ship")
	require.ErrorIs(t, err, offsets.ErrUnknownMode)
}
