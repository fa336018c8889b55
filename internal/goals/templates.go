package goals

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTemplate is returned by TemplateByID.
var ErrUnknownTemplate = errors.New("unknown goal template")

// Difficulty grades the effort a template takes.
type Difficulty string

// Difficulty levels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// TermColor returns the ANSI 256 color used to badge the difficulty.
func (d Difficulty) TermColor() string {
	switch d {
	case DifficultyEasy:
		return "42"
	case DifficultyMedium:
		return "214"
	case DifficultyHard:
		return "196"
	default:
		return "240"
	}
}

// Template is a ready-made reduction goal.
type Template struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	TargetReduction float64    `json:"targetReduction"`
	TimeframeMonths int        `json:"timeframe"`
	Difficulty      Difficulty `json:"difficulty"`
	Category        string     `json:"category"`
	Benefits        []string   `json:"benefits"`
	Requirements    []string   `json:"requirements"`
}

// Templates returns the template catalog.
func Templates() []Template {
	return []Template{
		{
			ID:              "net-zero-2030",
			Title:           "Net Zero by 2030",
			Description:     "Achieve carbon neutrality through emission reduction and offsets",
			TargetReduction: 100,
			TimeframeMonths: 72,
			Difficulty:      DifficultyHard,
			Category:        "Climate Action",
			Benefits: []string{
				"Complete carbon neutrality", "Industry leadership position",
				"Enhanced brand reputation", "Future-proof business model",
			},
			Requirements: []string{
				"Comprehensive emission audit", "Science-based targets",
				"Supply chain engagement", "Carbon offset strategy",
			},
		},
		{
			ID:              "sbti-target",
			Title:           "Science-Based Target (SBTi)",
			Description:     "Set targets aligned with climate science to limit global warming",
			TargetReduction: 50,
			TimeframeMonths: 60,
			Difficulty:      DifficultyMedium,
			Category:        "Science-Based",
			Benefits: []string{
				"Credible climate commitment", "Investor confidence",
				"Risk mitigation", "Cost savings from efficiency",
			},
			Requirements: []string{
				"SBTi methodology compliance", "1.5°C pathway alignment",
				"Scope 1, 2, and 3 targets", "Annual progress reporting",
			},
		},
		{
			ID:              "renewable-energy",
			Title:           "100% Renewable Energy",
			Description:     "Transition to renewable energy sources across operations",
			TargetReduction: 40,
			TimeframeMonths: 36,
			Difficulty:      DifficultyMedium,
			Category:        "Energy Transition",
			Benefits: []string{
				"Stable energy costs", "Reduced carbon footprint",
				"Energy independence", "Green marketing opportunities",
			},
			Requirements: []string{
				"Energy audit and planning", "Renewable energy procurement",
				"Infrastructure upgrades", "Power purchase agreements",
			},
		},
		{
			ID:              "quick-wins",
			Title:           "Quick Efficiency Gains",
			Description:     "Achieve immediate emission reductions through efficiency measures",
			TargetReduction: 20,
			TimeframeMonths: 12,
			Difficulty:      DifficultyEasy,
			Category:        "Energy Efficiency",
			Benefits: []string{
				"Fast implementation", "Immediate cost savings",
				"Low investment required", "Foundation for bigger goals",
			},
			Requirements: []string{
				"Energy efficiency audit", "Equipment upgrades",
				"Staff training", "Monitoring systems",
			},
		},
		{
			ID:              "supply-chain",
			Title:           "Sustainable Supply Chain",
			Description:     "Engage suppliers to reduce Scope 3 emissions",
			TargetReduction: 35,
			TimeframeMonths: 48,
			Difficulty:      DifficultyHard,
			Category:        "Supply Chain",
			Benefits: []string{
				"Comprehensive impact reduction", "Supply chain resilience",
				"Stakeholder engagement", "Competitive advantage",
			},
			Requirements: []string{
				"Supplier emission assessment", "Engagement programs",
				"Procurement policy updates", "Regular monitoring",
			},
		},
		{
			ID:              "circular-economy",
			Title:           "Circular Economy Model",
			Description:     "Implement circular principles to minimize waste and emissions",
			TargetReduction: 30,
			TimeframeMonths: 60,
			Difficulty:      DifficultyHard,
			Category:        "Circular Economy",
			Benefits: []string{
				"Waste reduction", "Resource efficiency",
				"New revenue streams", "Innovation opportunities",
			},
			Requirements: []string{
				"Circular design principles", "Waste stream analysis",
				"Partnership development", "Business model innovation",
			},
		},
	}
}

// TemplateByID looks up a template, ignoring case.
func TemplateByID(id string) (Template, error) {
	for _, tpl := range Templates() {
		if strings.EqualFold(tpl.ID, strings.TrimSpace(id)) {
			return tpl, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
}
