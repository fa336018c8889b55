package greenops

import (
	"math"
	"strconv"
	"strings"
)

// unitFactor returns the kilogram conversion factor for unit.
// Matching is case-insensitive and accepts an optional "CO2e" suffix.
func unitFactor(unit string) (float64, bool) {
	u := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), "co2e")
	switch u {
	case "g":
		return GramsToKg, true
	case "kg", "":
		return KgToKg, true
	case "t":
		return TonsToKg, true
	case "lb":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts a carbon quantity in unit to kilograms.
// An empty unit is taken as kilograms.
//
// Returns ErrCalculationOverflow for Inf/NaN input or results,
// ErrNegativeValue for negative values and ErrInvalidUnit for unknown units.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}
	return result, nil
}

// ParseQuantity parses strings such as "1200", "1.5 t" or "800kgCO2e"
// into kilograms.
func ParseQuantity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidQuantity
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E'
	})
	numPart, unitPart := s, ""
	if split >= 0 {
		numPart, unitPart = s[:split], s[split:]
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(numPart), 64)
	if err != nil {
		return 0, ErrInvalidQuantity
	}
	return NormalizeToKg(value, unitPart)
}

// IsRecognizedUnit reports whether unit is a supported carbon unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}
