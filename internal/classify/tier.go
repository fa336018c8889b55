// Package classify buckets emission ratios into severity tiers and maps
// those tiers to the color tokens and labels used by every output surface.
package classify

import (
	"errors"
	"fmt"
	"math"
)

// Tier is the severity bucket of an emission ratio.
type Tier int

const (
	// TierLow covers ratios at or below Thresholds.Low.
	TierLow Tier = iota
	// TierMedium covers ratios above Thresholds.Low up to Thresholds.Medium.
	TierMedium
	// TierHigh covers ratios above Thresholds.Medium.
	TierHigh
)

// Default ratio thresholds.
const (
	DefaultLowThreshold    = 0.4
	DefaultMediumThreshold = 0.7
)

// ErrInvalidThresholds is returned by Thresholds.Validate.
var ErrInvalidThresholds = errors.New("classification thresholds must satisfy 0 <= low < medium")

// Thresholds are the upper bounds (inclusive) of the low and medium tiers.
type Thresholds struct {
	Low    float64 `yaml:"low"    json:"low"`
	Medium float64 `yaml:"medium" json:"medium"`
}

// DefaultThresholds returns the 0.4 / 0.7 split.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: DefaultLowThreshold, Medium: DefaultMediumThreshold}
}

// Validate checks that the thresholds form increasing, finite bounds.
func (t Thresholds) Validate() error {
	if math.IsNaN(t.Low) || math.IsNaN(t.Medium) || math.IsInf(t.Medium, 0) {
		return fmt.Errorf("%w: got low=%v medium=%v", ErrInvalidThresholds, t.Low, t.Medium)
	}
	if t.Low < 0 || t.Low >= t.Medium {
		return fmt.Errorf("%w: got low=%v medium=%v", ErrInvalidThresholds, t.Low, t.Medium)
	}
	return nil
}

// Classify returns the tier of ratio. NaN and negative ratios are low.
func (t Thresholds) Classify(ratio float64) Tier {
	switch {
	case ratio > t.Medium:
		return TierHigh
	case ratio > t.Low:
		return TierMedium
	default:
		return TierLow
	}
}

// ClassifyValue classifies value / maxValue. A non-positive maxValue
// yields a zero ratio.
func (t Thresholds) ClassifyValue(value, maxValue float64) Tier {
	if maxValue <= 0 {
		return TierLow
	}
	return t.Classify(value / maxValue)
}

// Classify classifies ratio with the default thresholds.
func Classify(ratio float64) Tier {
	return DefaultThresholds().Classify(ratio)
}

// ClassifyValue classifies value / maxValue with the default thresholds.
func ClassifyValue(value, maxValue float64) Tier {
	return DefaultThresholds().ClassifyValue(value, maxValue)
}

// String returns "low", "medium" or "high".
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// Color returns the hex color token of the tier.
func (t Tier) Color() string {
	switch t {
	case TierHigh:
		return "#ef4444"
	case TierMedium:
		return "#f59e0b"
	default:
		return "#10b981"
	}
}

// Gradient returns the chart gradient id of the tier.
func (t Tier) Gradient() string {
	switch t {
	case TierHigh:
		return "redGradient"
	case TierMedium:
		return "amberGradient"
	default:
		return "greenGradient"
	}
}

// Label returns the human label of the tier.
func (t Tier) Label() string {
	switch t {
	case TierHigh:
		return "High impact"
	case TierMedium:
		return "Moderate impact"
	default:
		return "Low impact"
	}
}

// TermColor returns the ANSI 256 color code used for terminal output.
func (t Tier) TermColor() string {
	switch t {
	case TierHigh:
		return "196"
	case TierMedium:
		return "214"
	default:
		return "42"
	}
}

// MarshalText encodes the tier by name so JSON output reads "low" not 0.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
