// Package greenops formats carbon emission quantities for display and
// converts them into relatable real-world equivalencies.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencyTreeYears converts CO2e to trees needed for one year of absorption.
	EquivalencyTreeYears

	// EquivalencyCarMonths converts CO2e to months of one car kept off the road.
	EquivalencyCarMonths
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencyTreeYears:
		return "TreeYears"
	case EquivalencyCarMonths:
		return "CarMonths"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// CarbonInput is a carbon quantity in any recognized unit.
type CarbonInput struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit"  yaml:"unit"`
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results contains calculated equivalencies in priority order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form used by the CLI and TUI.
	// Example: "Equivalent to planting ~262 trees or driving ~30,000 miles"
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form for narrow outputs.
	CompactText string `json:"compact_text"`

	IsEmpty bool `json:"is_empty"`
}
