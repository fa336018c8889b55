package goals

import (
	"errors"
	"fmt"
	"math"

	"github.com/rshade/carbontrace/internal/greenops"
)

// Reduction input bounds.
const (
	MinReductionPercent = 1
	MaxReductionPercent = 100
	MinTimeframeMonths  = 1
	MaxTimeframeMonths  = 60

	// BenchmarkReductionPercent is the reduction that counts as full progress.
	BenchmarkReductionPercent = 50.0
)

var (
	// ErrReductionPercent is returned for a target outside 1-100%.
	ErrReductionPercent = errors.New("target reduction must be between 1 and 100 percent")
	// ErrTimeframe is returned for a timeframe outside 1-60 months.
	ErrTimeframe = errors.New("timeframe must be between 1 and 60 months")
)

// ReductionPlan is the projection of a percentage cut over a timeframe.
type ReductionPlan struct {
	CurrentEmissions float64 `json:"currentEmissions"`
	TargetPercent    float64 `json:"targetPercent"`
	TimeframeMonths  int     `json:"timeframeMonths"`
	TargetEmissions  float64 `json:"targetEmissions"`
	TotalReduction   float64 `json:"totalReduction"`
	MonthlyReduction float64 `json:"monthlyReduction"`
	// ProgressPercent is TargetPercent against the 50% benchmark, capped at 100.
	ProgressPercent float64 `json:"progressPercent"`
	// CarMonths is how many months of one car off the road the cut equals.
	CarMonths int64 `json:"carMonths"`
}

// Reduction plans a targetPercent cut of current emissions over months.
func Reduction(current, targetPercent float64, months int) (ReductionPlan, error) {
	if math.IsNaN(targetPercent) || targetPercent < MinReductionPercent || targetPercent > MaxReductionPercent {
		return ReductionPlan{}, fmt.Errorf("%w: got %v", ErrReductionPercent, targetPercent)
	}
	if months < MinTimeframeMonths || months > MaxTimeframeMonths {
		return ReductionPlan{}, fmt.Errorf("%w: got %d", ErrTimeframe, months)
	}

	target := current * (1 - targetPercent/100) //nolint:mnd // Percent to ratio.
	saved := current - target
	return ReductionPlan{
		CurrentEmissions: current,
		TargetPercent:    targetPercent,
		TimeframeMonths:  months,
		TargetEmissions:  target,
		TotalReduction:   saved,
		MonthlyReduction: saved / float64(months),
		ProgressPercent:  math.Min(targetPercent/BenchmarkReductionPercent*100, 100), //nolint:mnd // Percent.
		CarMonths:        greenops.CarMonths(saved),
	}, nil
}
