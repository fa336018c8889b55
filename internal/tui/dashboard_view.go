package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
)

// View renders the current view (Bubble Tea interface).
func (m DashboardModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m DashboardModel) barWidth() int {
	w := m.width - labelWidth - 24 //nolint:mnd // Label, value and padding.
	if w < 10 {                    //nolint:mnd // Narrowest useful bar.
		w = 10
	}
	if w > 50 { //nolint:mnd // Widest bar.
		w = 50
	}
	return w
}

func (m DashboardModel) renderListView() string {
	sections := []string{m.renderHeader(), m.renderTabs()}

	switch m.tab {
	case TabStages:
		sections = append(sections, m.renderStagesPane())
	case TabCompare:
		sections = append(sections, m.renderComparePane())
	case TabAlerts:
		sections = append(sections, m.renderAlertsPane())
	}

	sections = append(sections, SubtleStyle.Render(
		"←/→ product | tab/1-3 pane | ↑/↓ select | enter detail | q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderHeader() string {
	p := m.Product()
	title := TitleStyle.Render("CarbonTrace")
	product := HeaderStyle.Render(p.Label())
	position := LabelStyle.Render(fmt.Sprintf("(%d/%d)", m.product+1, len(m.products)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", product, " ", position)
}

func (m DashboardModel) renderTabs() string {
	tabs := make([]string, 0, numTabs)
	for t := TabStages; t < numTabs; t++ {
		label := t.String()
		if t == TabAlerts && m.alerts.HasCritical() {
			label += fmt.Sprintf(" (%d)", m.alerts.Critical)
		}
		if t == m.tab {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m DashboardModel) renderStagesPane() string {
	if len(m.rows) == 0 {
		return SubtleStyle.Render("No stages recorded for this product")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderMetrics(m.metrics),
		m.table.View(),
		"",
		RenderStageChart(m.rows, m.barWidth()),
	)
}

func (m DashboardModel) renderComparePane() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("PRODUCT COMPARISON"))
	b.WriteString("\n\n")
	b.WriteString(RenderComparisonChart(m.ranked, m.barWidth()))
	b.WriteString("\n\n")
	for _, r := range m.ranked {
		score := fmt.Sprintf("%3d", r.SustainabilityScore)
		b.WriteString(fmt.Sprintf("#%d %s  score %s  %s\n",
			r.Rank,
			RankingStyle(r.Position).Render(padLabel(r.Product)),
			TierStyle(classify.ScoreTier(r.SustainabilityScore)).Render(score),
			LabelStyle.Render(r.ImpactLevel),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderAlertsPane() string {
	if len(m.alerts.Alerts) == 0 {
		return SubtleStyle.Render("No stages to evaluate")
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("EMISSION ALERTS"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Average per stage: " + greenops.FormatEmissionTooltip(m.alerts.Average)))
	b.WriteString("\n\n")
	for _, a := range m.alerts.Alerts {
		level := fmt.Sprintf("%-8s", strings.ToUpper(string(a.Level)))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			AlertStyle(a.Level).Render(level),
			padLabel(a.Stage),
			greenops.FormatEmissionTooltip(a.Emissions),
		))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s",
		CriticalStyle.Render(fmt.Sprintf("%d critical", m.alerts.Critical)),
		WarningStyle.Render(fmt.Sprintf("%d moderate", m.alerts.Moderate)),
		OKStyle.Render(fmt.Sprintf("%d low", m.alerts.Low)),
	))
	return b.String()
}

func (m DashboardModel) renderDetailView() string {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return "Error: selected stage out of range"
	}
	r := m.rows[m.selected]

	var content strings.Builder
	content.WriteString(HeaderStyle.Render("STAGE DETAIL"))
	content.WriteString("\n\n")
	detailRow(&content, "Product", m.Product().Label())
	detailRow(&content, "Stage", r.Stage)
	detailRow(&content, "Emissions", r.Tooltip)
	detailRow(&content, "Share", greenops.FormatShare(r.Share))
	detailRow(&content, "Of highest", greenops.FormatPercentage(r.Ratio))
	detailRow(&content, "Impact", TierStyle(r.Tier).Render(r.Tier.Label()))
	detailRow(&content, "Severity", string(r.Severity))
	detailRow(&content, "Alert", string(emissions.AlertLevelFor(r.Emissions, m.alerts.Average)))

	if eq := m.equivalencyText(r.Emissions); eq != "" {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(eq))
		content.WriteString("\n")
	}

	if r.Recommendation != "" {
		content.WriteString("\n")
		content.WriteString(HeaderStyle.Render("RECOMMENDATION"))
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().Width(max(m.width-4, 20)).Render(r.Recommendation)) //nolint:mnd // Margins.
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("esc back | q quit"))
	return BoxStyle.Render(content.String())
}

func detailRow(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(fmt.Sprintf("%-12s", label)))
	b.WriteString(value)
	b.WriteString("\n")
}

func (m DashboardModel) equivalencyText(kg float64) string {
	out, err := greenops.Calculate(m.ctx, greenops.CarbonInput{Value: kg, Unit: "kg"})
	if err != nil || out.IsEmpty {
		return ""
	}
	return out.DisplayText
}
