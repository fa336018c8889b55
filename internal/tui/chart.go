package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
)

// Bar glyphs.
const (
	barFull  = "█"
	barEmpty = "░"

	defaultBarWidth = 30
	labelWidth      = 14
)

// BarCells returns how many of width cells a value fills against maxValue.
// Any positive value fills at least one cell.
func BarCells(value, maxValue float64, width int) int {
	if width <= 0 || maxValue <= 0 || value <= 0 || math.IsNaN(value) {
		return 0
	}
	cells := int(math.Round(value / maxValue * float64(width)))
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return cells
}

// RenderBar draws a horizontal bar in color, padded to width with empty cells.
func RenderBar(value, maxValue float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = defaultBarWidth
	}
	filled := BarCells(value, maxValue, width)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(barFull, filled))
	return bar + LabelStyle.Render(strings.Repeat(barEmpty, width-filled))
}

// RenderStageChart renders one tier-colored bar per stage, in record order,
// followed by the axis maximum.
func RenderStageChart(rows []emissions.StageBreakdown, barWidth int) string {
	if len(rows) == 0 {
		return SubtleStyle.Render("No stages")
	}
	var highest float64
	for _, r := range rows {
		highest = math.Max(highest, r.Emissions)
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(padLabel(r.Stage))
		b.WriteString(" ")
		b.WriteString(RenderBar(r.Emissions, highest, barWidth, lipgloss.Color(r.Tier.TermColor())))
		b.WriteString(" ")
		b.WriteString(TierStyle(r.Tier).Render(greenops.FormatEmissions(r.Emissions)))
		b.WriteString("\n")
	}
	b.WriteString(LabelStyle.Render(strings.Repeat(" ", labelWidth+1) + "0" +
		strings.Repeat(" ", max(barWidth-1, 1)) + greenops.FormatAxisValue(highest)))
	return b.String()
}

// RenderComparisonChart renders ranked products as palette-colored bars with
// totals colored by ranking position.
func RenderComparisonChart(ranked []emissions.RankedProduct, barWidth int) string {
	if len(ranked) == 0 {
		return SubtleStyle.Render("No products")
	}
	var highest float64
	for _, r := range ranked {
		highest = math.Max(highest, r.TotalEmissions)
	}

	var b strings.Builder
	for i, r := range ranked {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(padLabel(r.Product))
		b.WriteString(" ")
		b.WriteString(RenderBar(r.TotalEmissions, highest, barWidth, seriesColor(i)))
		b.WriteString(" ")
		b.WriteString(RankingStyle(r.Position).Render(greenops.FormatEmissionTooltip(r.TotalEmissions)))
	}
	return b.String()
}

// RenderMetrics renders the four summary figures as a single line of boxes.
func RenderMetrics(m emissions.Metrics) string {
	card := func(label string, v float64) string {
		return BoxStyle.Render(LabelStyle.Render(label) + "\n" + ValueStyle.Render(greenops.FormatEmissionTooltip(v)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", m.Total),
		card("Highest", m.Max),
		card("Lowest", m.Min),
		card("Average", math.Round(m.Average*10)/10), //nolint:mnd // One decimal.
	)
}

// seriesColor returns the bar color for the i-th series.
func seriesColor(i int) lipgloss.Color {
	return lipgloss.Color(classify.DefaultColor(i))
}

func padLabel(s string) string {
	if lipgloss.Width(s) > labelWidth {
		r := []rune(s)
		s = string(r[:labelWidth-1]) + "…"
	}
	return s + strings.Repeat(" ", max(labelWidth-lipgloss.Width(s), 0))
}
