package classify

// Severity grades a stage by its share of the largest stage.
type Severity string

// Severity levels.
const (
	SeverityCritical Severity = "Critical"
	SeverityHigh     Severity = "High"
	SeverityLow      Severity = "Low"
)

// Share-of-max boundaries (percent, inclusive).
const (
	SeverityCriticalPercent = 80.0
	SeverityHighPercent     = 50.0
)

// SeverityOf returns the severity of value relative to maxValue.
// A non-positive maxValue is Low.
func SeverityOf(value, maxValue float64) Severity {
	if maxValue <= 0 {
		return SeverityLow
	}
	pct := value / maxValue * 100 //nolint:mnd // Ratio to percent.
	switch {
	case pct >= SeverityCriticalPercent:
		return SeverityCritical
	case pct >= SeverityHighPercent:
		return SeverityHigh
	default:
		return SeverityLow
	}
}

// Impact levels shown next to compared products.
const (
	ImpactNeedsImprovement = "Needs improvement"
	ImpactModerate         = "Moderate impact"
	ImpactMostEcoFriendly  = "Most eco-friendly option"
)

// Impact boundaries as a percent of the highest total (exclusive).
const (
	ImpactHighPercent     = 70.0
	ImpactModeratePercent = 40.0
)

// ImpactLevel describes a product by its total as a percentage of the
// highest total in the comparison set.
func ImpactLevel(percentOfMax float64) string {
	switch {
	case percentOfMax > ImpactHighPercent:
		return ImpactNeedsImprovement
	case percentOfMax > ImpactModeratePercent:
		return ImpactModerate
	default:
		return ImpactMostEcoFriendly
	}
}

// Sustainability score boundaries.
const (
	ScoreGoodMin = 70
	ScoreFairMin = 40
)

// ScoreTier maps a 0-100 sustainability score to a tier. Higher scores are
// better, so a score of 70 or more is low impact.
func ScoreTier(score int) Tier {
	switch {
	case score >= ScoreGoodMin:
		return TierLow
	case score >= ScoreFairMin:
		return TierMedium
	default:
		return TierHigh
	}
}
