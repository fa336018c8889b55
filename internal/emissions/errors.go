package emissions

import "errors"

var (
	// ErrEmptyRecords is returned when an aggregate needs at least one record.
	ErrEmptyRecords = errors.New("no emission records")
	// ErrEmptyStage is returned for a record without a stage name.
	ErrEmptyStage = errors.New("stage name is required")
	// ErrNegativeEmissions is returned for a record with emissions below zero.
	ErrNegativeEmissions = errors.New("emissions must not be negative")
	// ErrNonFiniteEmissions is returned for NaN or infinite emissions.
	ErrNonFiniteEmissions = errors.New("emissions must be a finite number")
)
