// Package tui renders CarbonTrace data for the terminal: lipgloss styles
// and bar charts shared with the CLI tables, and the bubbletea dashboard.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/emissions"
)

// Palette.
const (
	ColorLow      = lipgloss.Color("42")
	ColorMedium   = lipgloss.Color("214")
	ColorHigh     = lipgloss.Color("196")
	ColorAccent   = lipgloss.Color("39")
	ColorSubtle   = lipgloss.Color("241")
	ColorBorder   = lipgloss.Color("238")
	ColorHeaderBg = lipgloss.Color("22")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorLow)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).
			Background(ColorHeaderBg).Padding(0, 1)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorSubtle)
	ValueStyle    = lipgloss.NewStyle().Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorSubtle).Italic(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorAccent)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorMedium).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorHigh).Bold(true)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorLow).Bold(true)
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).
			Background(ColorAccent).Padding(0, 1)
	TabStyle           = lipgloss.NewStyle().Foreground(ColorSubtle).Padding(0, 1)
	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorLow).BorderBottom(true)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).
				Background(ColorHeaderBg)
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or fallback when it is not a
// terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// TierStyle colors text by emission tier.
func TierStyle(t classify.Tier) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.TermColor()))
}

// AlertStyle colors text by alert level.
func AlertStyle(level emissions.AlertLevel) lipgloss.Style {
	switch level {
	case emissions.AlertCritical:
		return CriticalStyle
	case emissions.AlertModerate:
		return WarningStyle
	default:
		return OKStyle
	}
}

// RankingStyle colors a comparison row by its position.
func RankingStyle(r classify.Ranking) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(r.TermColor())).Bold(r != classify.RankingMiddle)
}
