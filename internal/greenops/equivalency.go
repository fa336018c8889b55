package greenops

import (
	"context"
	"fmt"
	"math"

	"github.com/rshade/carbontrace/internal/logging"
)

// Calculate normalizes input to kilograms and expresses it as trees needed
// for a year of absorption, months of a car off the road, and miles driven.
//
// Inputs below MinEquivalencyThresholdKg produce an empty output with
// InputKg set. Normalization failures return an empty output and the error.
func Calculate(ctx context.Context, input CarbonInput) (EquivalencyOutput, error) {
	log := logging.FromContext(ctx)

	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		log.Debug().Err(err).Str("unit", input.Unit).Msg("carbon input rejected")
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	trees := TreesForYear(kg)
	carMonths := CarMonths(kg)
	miles := kg / EPAMilesDrivenFactor

	if math.IsInf(miles, 0) || math.IsNaN(miles) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	treesFormatted := formatEquivalencyValue(float64(trees))
	carFormatted := formatEquivalencyValue(float64(carMonths))
	milesFormatted := formatEquivalencyValue(miles)

	results := []EquivalencyResult{
		{
			Type:           EquivalencyTreeYears,
			Value:          float64(trees),
			FormattedValue: treesFormatted,
			Label:          "trees for one year",
		},
		{
			Type:           EquivalencyCarMonths,
			Value:          float64(carMonths),
			FormattedValue: carFormatted,
			Label:          "car-months off the road",
		},
		{
			Type:           EquivalencyMilesDriven,
			Value:          miles,
			FormattedValue: milesFormatted,
			Label:          "miles driven",
		},
	}

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		IsEmpty:     false,
		CompactText: fmt.Sprintf("(≈ %s trees, %s mi)", treesFormatted, milesFormatted),
		DisplayText: fmt.Sprintf("Equivalent to planting ~%s trees or driving ~%s miles",
			treesFormatted, milesFormatted),
	}, nil
}

// TreesForYear returns the whole number of trees needed to absorb kg of
// CO2e in one year. Partial trees round up.
func TreesForYear(kg float64) int64 {
	if kg <= 0 {
		return 0
	}
	return int64(math.Ceil(kg / TreeYearFactor))
}

// CarMonths returns the number of months a passenger car would need to be
// off the road to save kg of CO2e, rounded to the nearest month.
func CarMonths(kg float64) int64 {
	return int64(math.Round(kg / CarMonthFactor))
}

// formatEquivalencyValue uses large-number scaling from a million upwards
// and comma-separated integers below.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
