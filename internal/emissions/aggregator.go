package emissions

import (
	"math"
)

// percentScale converts a ratio to a percentage.
const percentScale = 100

// Total returns the sum of all emissions. An empty list totals 0.
func Total(records []Record) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Emissions
	}
	return sum
}

// Max returns the largest emission value.
func Max(records []Record) (float64, error) {
	r, err := HighestStage(records)
	if err != nil {
		return 0, err
	}
	return r.Emissions, nil
}

// Min returns the smallest emission value.
func Min(records []Record) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptyRecords
	}
	lowest := records[0].Emissions
	for _, r := range records[1:] {
		if r.Emissions < lowest {
			lowest = r.Emissions
		}
	}
	return lowest, nil
}

// Average returns the mean emission value, or NaN for an empty list.
func Average(records []Record) float64 {
	if len(records) == 0 {
		return math.NaN()
	}
	return Total(records) / float64(len(records))
}

// AverageE is Average with an explicit error for an empty list.
func AverageE(records []Record) (float64, error) {
	if len(records) == 0 {
		return 0, ErrEmptyRecords
	}
	return Average(records), nil
}

// HighestStage returns the record with the largest emissions. Ties go to the
// first record in list order.
func HighestStage(records []Record) (Record, error) {
	if len(records) == 0 {
		return Record{}, ErrEmptyRecords
	}
	highest := records[0]
	for _, r := range records[1:] {
		if r.Emissions > highest.Emissions {
			highest = r
		}
	}
	return highest, nil
}

// CalculateMetrics returns total, max, min and average in one pass over the
// aggregate helpers.
func CalculateMetrics(records []Record) (Metrics, error) {
	if len(records) == 0 {
		return Metrics{}, ErrEmptyRecords
	}
	// Errors are impossible past the emptiness check.
	highest, _ := Max(records)
	lowest, _ := Min(records)
	return Metrics{
		Total:   Total(records),
		Max:     highest,
		Min:     lowest,
		Average: Average(records),
	}, nil
}

// Percentage returns value / maxValue, or 0 when maxValue is not positive.
// This is the ratio the classifier buckets.
func Percentage(value, maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	return value / maxValue
}

// ShareOfTotal returns value as a percentage of total, or 0 when total is
// not positive.
func ShareOfTotal(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return value / total * percentScale
}

// SustainabilityScore returns round((1 - emissions/maxEmissions) * 100).
// 100 is the cleanest possible value and 0 matches the maximum. The result
// is not clamped: emissions above maxEmissions produce a negative score.
// A non-positive maxEmissions yields 0.
func SustainabilityScore(emissions, maxEmissions float64) int {
	if maxEmissions <= 0 {
		return 0
	}
	return int(math.Round((1 - emissions/maxEmissions) * percentScale))
}

// ReductionPercent returns how far current sits below baseline, in percent.
// Increases come back negative. A non-positive baseline yields 0.
func ReductionPercent(baseline, current float64) float64 {
	if baseline <= 0 {
		return 0
	}
	return (baseline - current) / baseline * percentScale
}
