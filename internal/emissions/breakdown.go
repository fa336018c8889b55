package emissions

import (
	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/greenops"
)

// StageBreakdown is one record with everything the stage views display.
type StageBreakdown struct {
	Record

	Ratio    float64           `json:"ratio"`
	Tier     classify.Tier     `json:"tier"`
	Color    string            `json:"color"`
	Share    float64           `json:"share"`
	Severity classify.Severity `json:"severity"`
	Tooltip  string            `json:"tooltip"`
}

// Breakdown classifies every record against the largest stage using th and
// computes its share of the profile total. Record order is preserved.
func Breakdown(records []Record, th classify.Thresholds) []StageBreakdown {
	total := Total(records)
	highest, err := Max(records)
	if err != nil {
		return []StageBreakdown{}
	}

	rows := make([]StageBreakdown, 0, len(records))
	for _, r := range records {
		ratio := Percentage(r.Emissions, highest)
		tier := th.Classify(ratio)
		rows = append(rows, StageBreakdown{
			Record:   r,
			Ratio:    ratio,
			Tier:     tier,
			Color:    tier.Color(),
			Share:    ShareOfTotal(r.Emissions, total),
			Severity: classify.SeverityOf(r.Emissions, highest),
			Tooltip:  greenops.FormatEmissionTooltip(r.Emissions),
		})
	}
	return rows
}
