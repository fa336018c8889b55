package emissions

import (
	"sort"

	"github.com/rshade/carbontrace/internal/classify"
)

// RankedProduct is a ComparisonRecord placed in ascending-emissions order.
type RankedProduct struct {
	ComparisonRecord

	// Rank is 1-based; rank 1 has the lowest total.
	Rank                int              `json:"rank"`
	SustainabilityScore int              `json:"sustainabilityScore"`
	PercentOfMax        float64          `json:"percentOfMax"`
	ImpactLevel         string           `json:"impactLevel"`
	Position            classify.Ranking `json:"position"`
}

// Summarize totals a profile into a comparison record.
func Summarize(p Profile) ComparisonRecord {
	return ComparisonRecord{Product: p.Product, TotalEmissions: Total(p.Records)}
}

// CompareProfiles summarizes each profile, preserving input order.
func CompareProfiles(profiles []Profile) []ComparisonRecord {
	out := make([]ComparisonRecord, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Summarize(p))
	}
	return out
}

// MaxTotal returns the largest total in comparisons, or 0 when empty.
func MaxTotal(comparisons []ComparisonRecord) float64 {
	var highest float64
	for _, c := range comparisons {
		if c.TotalEmissions > highest {
			highest = c.TotalEmissions
		}
	}
	return highest
}

// Rank orders comparisons by ascending total (stable for equal totals) and
// scores each against the largest total in the set. The input is not
// modified.
func Rank(comparisons []ComparisonRecord) []RankedProduct {
	sorted := make([]ComparisonRecord, len(comparisons))
	copy(sorted, comparisons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalEmissions < sorted[j].TotalEmissions
	})

	highest := MaxTotal(sorted)
	ranked := make([]RankedProduct, 0, len(sorted))
	for i, c := range sorted {
		pct := Percentage(c.TotalEmissions, highest) * percentScale
		ranked = append(ranked, RankedProduct{
			ComparisonRecord:    c,
			Rank:                i + 1,
			SustainabilityScore: SustainabilityScore(c.TotalEmissions, highest),
			PercentOfMax:        pct,
			ImpactLevel:         classify.ImpactLevel(pct),
			Position:            classify.RankingOf(i, len(sorted)),
		})
	}
	return ranked
}
