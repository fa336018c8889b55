package emissions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/emissions"
)

func sample() []emissions.Record {
	return []emissions.Record{
		{Stage: "A", Emissions: 100},
		{Stage: "B", Emissions: 300},
		{Stage: "C", Emissions: 600},
	}
}

func TestTotal(t *testing.T) {
	assert.InDelta(t, 0.0, emissions.Total(nil), 0)
	assert.InDelta(t, 0.0, emissions.Total([]emissions.Record{}), 0)
	assert.InDelta(t, 1000.0, emissions.Total(sample()), 1e-9)
}

func TestMetrics_Example(t *testing.T) {
	records := sample()

	m, err := emissions.CalculateMetrics(records)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, m.Total, 1e-9)
	assert.InDelta(t, 600.0, m.Max, 1e-9)
	assert.InDelta(t, 100.0, m.Min, 1e-9)
	assert.InDelta(t, 333.33, m.Average, 0.01)

	highest, err := emissions.HighestStage(records)
	require.NoError(t, err)
	assert.Equal(t, "C", highest.Stage)

	assert.InDelta(t, 0.1667, emissions.Percentage(100, 600), 0.0001)
	assert.InDelta(t, 0.5, emissions.Percentage(300, 600), 1e-9)
	assert.InDelta(t, 1.0, emissions.Percentage(600, 600), 1e-9)
}

func TestEmptyRecords(t *testing.T) {
	_, err := emissions.Max(nil)
	require.ErrorIs(t, err, emissions.ErrEmptyRecords)

	_, err = emissions.Min(nil)
	require.ErrorIs(t, err, emissions.ErrEmptyRecords)

	_, err = emissions.HighestStage(nil)
	require.ErrorIs(t, err, emissions.ErrEmptyRecords)

	_, err = emissions.CalculateMetrics(nil)
	require.ErrorIs(t, err, emissions.ErrEmptyRecords)

	_, err = emissions.AverageE(nil)
	require.ErrorIs(t, err, emissions.ErrEmptyRecords)

	assert.True(t, math.IsNaN(emissions.Average(nil)))
}

func TestAverage_WithinBounds(t *testing.T) {
	lists := [][]emissions.Record{
		sample(),
		{{Stage: "only", Emissions: 42}},
		{{Stage: "a", Emissions: 0}, {Stage: "b", Emissions: 0}},
		{{Stage: "a", Emissions: 1200}, {Stage: "b", Emissions: 450}, {Stage: "c", Emissions: 3000}},
	}

	for _, records := range lists {
		avg := emissions.Average(records)
		lo, err := emissions.Min(records)
		require.NoError(t, err)
		hi, err := emissions.Max(records)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, avg, lo)
		assert.LessOrEqual(t, avg, hi)
	}
}

func TestHighestStage_TieKeepsFirst(t *testing.T) {
	records := []emissions.Record{
		{Stage: "first", Emissions: 500},
		{Stage: "second", Emissions: 500},
		{Stage: "third", Emissions: 100},
	}

	highest, err := emissions.HighestStage(records)
	require.NoError(t, err)
	assert.Equal(t, "first", highest.Stage)
}

func TestSustainabilityScore(t *testing.T) {
	tests := []struct {
		name      string
		emissions float64
		max       float64
		want      int
	}{
		{name: "equal to max", emissions: 6100, max: 6100, want: 0},
		{name: "zero emissions", emissions: 0, max: 6100, want: 100},
		{name: "half", emissions: 50, max: 100, want: 50},
		{name: "rounds", emissions: 4200, max: 6100, want: 31},
		{name: "above max is negative", emissions: 150, max: 100, want: -50},
		{name: "zero max", emissions: 10, max: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, emissions.SustainabilityScore(tt.emissions, tt.max))
		})
	}
}

func TestPercentageAndShare_GuardZero(t *testing.T) {
	assert.InDelta(t, 0.0, emissions.Percentage(10, 0), 0)
	assert.InDelta(t, 0.0, emissions.ShareOfTotal(10, 0), 0)
	assert.InDelta(t, 52.17, emissions.ShareOfTotal(3000, 5750), 0.01)
}

func TestReductionPercent(t *testing.T) {
	assert.InDelta(t, 25.0, emissions.ReductionPercent(1000, 750), 1e-9)
	assert.InDelta(t, -50.0, emissions.ReductionPercent(1000, 1500), 1e-9)
	assert.InDelta(t, 0.0, emissions.ReductionPercent(0, 10), 0)
}
