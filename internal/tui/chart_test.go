package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/emissions"
)

func TestBarCells(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		max   float64
		width int
		want  int
	}{
		{"full", 600, 600, 30, 30},
		{"half", 300, 600, 30, 15},
		{"tiny value still visible", 1, 6000, 30, 1},
		{"zero", 0, 600, 30, 0},
		{"zero max", 100, 0, 30, 0},
		{"over max clamps", 900, 600, 30, 30},
		{"no width", 100, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BarCells(tt.value, tt.max, tt.width))
		})
	}
}

func TestRenderBar_Width(t *testing.T) {
	bar := RenderBar(300, 600, 20, ColorLow)
	assert.Equal(t, 20, lipgloss.Width(bar))
	assert.Equal(t, 10, strings.Count(bar, barFull))
	assert.Equal(t, 10, strings.Count(bar, barEmpty))
}

func TestRenderStageChart(t *testing.T) {
	rows := emissions.Breakdown([]emissions.Record{
		{Stage: "A", Emissions: 100},
		{Stage: "B", Emissions: 300},
		{Stage: "C", Emissions: 600},
	}, classify.DefaultThresholds())

	chart := RenderStageChart(rows, 12)
	lines := strings.Split(chart, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[2], "600")
	assert.Contains(t, lines[3], "0.6k")
	assert.Equal(t, 12, strings.Count(lines[2], barFull))

	assert.Contains(t, RenderStageChart(nil, 12), "No stages")
}

func TestRenderComparisonChart(t *testing.T) {
	ranked := emissions.Rank([]emissions.ComparisonRecord{
		{Product: "Coffee", TotalEmissions: 5750},
		{Product: "Mango", TotalEmissions: 4200},
	})
	chart := RenderComparisonChart(ranked, 10)
	lines := strings.Split(chart, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Mango")
	assert.Contains(t, lines[1], "5,750 kg CO₂")
}

func TestSeriesColor_CyclesPalette(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#16a34a"), seriesColor(0))
	assert.Equal(t, lipgloss.Color("#0891b2"), seriesColor(1))
	assert.Equal(t, seriesColor(0), seriesColor(5))

	ranked := emissions.Rank([]emissions.ComparisonRecord{
		{Product: "A", TotalEmissions: 1},
		{Product: "B", TotalEmissions: 2},
		{Product: "C", TotalEmissions: 3},
		{Product: "D", TotalEmissions: 4},
		{Product: "E", TotalEmissions: 5},
		{Product: "F", TotalEmissions: 6},
	})
	lines := strings.Split(RenderComparisonChart(ranked, 6), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, 6, strings.Count(lines[5], barFull))
}

func TestPadLabel(t *testing.T) {
	assert.Equal(t, labelWidth, lipgloss.Width(padLabel("Farming")))
	long := padLabel("International Shipping Logistics")
	assert.Equal(t, labelWidth, lipgloss.Width(long))
	assert.True(t, strings.HasSuffix(long, "…"))
}
