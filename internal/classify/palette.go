package classify

// defaultPalette is cycled for series that carry no severity.
//
//nolint:gochecknoglobals // Constant lookup table.
var defaultPalette = []string{"#16a34a", "#0891b2", "#7c3aed", "#dc2626", "#ea580c"}

// DefaultColor returns the palette color for series index i.
func DefaultColor(i int) string {
	if i < 0 {
		i = -i
	}
	return defaultPalette[i%len(defaultPalette)]
}

// Ranking identifies where a product sits in a sorted comparison.
type Ranking string

// Ranking positions.
const (
	RankingFirst  Ranking = "first"
	RankingMiddle Ranking = "middle"
	RankingLast   Ranking = "last"
)

// RankingOf returns the position of index in a list of n items. A single
// item counts as first.
func RankingOf(index, n int) Ranking {
	switch {
	case index == 0:
		return RankingFirst
	case index == n-1:
		return RankingLast
	default:
		return RankingMiddle
	}
}

// TermColor returns the ANSI 256 color for a ranking position.
func (r Ranking) TermColor() string {
	switch r {
	case RankingFirst:
		return "42"
	case RankingLast:
		return "196"
	default:
		return "39"
	}
}
