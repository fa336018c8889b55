package greenops

// Equivalency factors, expressed as kg CO2e per unit of activity.
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger vehicle.
	// Source: EPA GHG Equivalencies Calculator (2024 edition).
	EPAMilesDrivenFactor = 0.192

	// TreeYearFactor is kg CO2e absorbed by one mature tree in one year.
	TreeYearFactor = 22.0

	// CarMonthFactor is kg CO2e emitted by one passenger car per month on the road.
	CarMonthFactor = 4600.0
)

// Unit conversion constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	// Below it the equivalencies round to zero and are omitted.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches FormatLarge to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches FormatLarge to "~X.X billion".
	BillionThreshold = 1_000_000_000

	// AxisUnitDivisor scales chart axis values to thousands.
	AxisUnitDivisor = 1000.0

	// maxFractionDigits mirrors the default fraction digits of locale number formatting.
	maxFractionDigits = 3
)

// CO2Unit is the display suffix for emission quantities.
const CO2Unit = "kg CO₂"
