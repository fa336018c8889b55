package emissions

import (
	"fmt"
	"math"
	"strings"
)

// NewRecord builds a validated record. The stage name is trimmed.
func NewRecord(stage string, emissions float64, recommendation string) (Record, error) {
	r := Record{
		Stage:          strings.TrimSpace(stage),
		Emissions:      emissions,
		Recommendation: strings.TrimSpace(recommendation),
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate reports whether the record satisfies the data model invariants.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Stage) == "" {
		return ErrEmptyStage
	}
	if math.IsNaN(r.Emissions) || math.IsInf(r.Emissions, 0) {
		return fmt.Errorf("stage %q: %w", r.Stage, ErrNonFiniteEmissions)
	}
	if r.Emissions < 0 {
		return fmt.Errorf("stage %q: %w (got %v)", r.Stage, ErrNegativeEmissions, r.Emissions)
	}
	return nil
}

// Validate checks every record and returns the first failure with its
// position.
func Validate(records []Record) error {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}
