// Package offsets estimates the cost of offsetting emissions and models the
// offset project marketplace and its shopping cart.
package offsets

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rshade/carbontrace/internal/greenops"
)

// ErrNoEmissions is returned when a calculation totals zero or less.
var ErrNoEmissions = errors.New("please enter valid values")

// ErrUnknownMode is returned for a calculation mode other than custom,
// transport or home.
var ErrUnknownMode = errors.New("unknown calculation mode")

// Mode selects how emissions are derived from the input.
type Mode string

// Calculation modes.
const (
	ModeCustom    Mode = "custom"
	ModeTransport Mode = "transport"
	ModeHome      Mode = "home"
)

// ParseMode resolves a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeCustom, ModeTransport, ModeHome:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Emission factors.
const (
	CarKgPerMile      = 0.4
	FlightKgPerHour   = 250
	HomeMonthsPerYear = 12

	DefaultPricePerKg = 0.02
)

// Input is the calculator form. Only the fields of Mode are read.
type Input struct {
	Mode        Mode    `json:"mode"`
	CustomKg    float64 `json:"customKg,omitempty"`
	CarMiles    float64 `json:"carMiles,omitempty"`
	FlightHours float64 `json:"flightHours,omitempty"`
	MonthlyKWh  float64 `json:"monthlyKWh,omitempty"`
}

// Result is an offset estimate.
type Result struct {
	TotalKg float64 `json:"totalEmissions"`
	Cost    float64 `json:"offsetCost"`
	Trees   int64   `json:"trees"`
}

// Calculator prices offsets.
type Calculator struct {
	PricePerKg float64
	KgPerTree  float64
}

// NewCalculator returns a calculator with the given pricing. Non-positive
// values fall back to $0.02/kg and 22 kg per tree-year.
func NewCalculator(pricePerKg, kgPerTree float64) Calculator {
	if pricePerKg <= 0 {
		pricePerKg = DefaultPricePerKg
	}
	if kgPerTree <= 0 {
		kgPerTree = greenops.TreeYearFactor
	}
	return Calculator{PricePerKg: pricePerKg, KgPerTree: kgPerTree}
}

// Emissions derives annual kg CO₂ from in. Transport is car miles plus
// flight hours; home energy is monthly kWh over a year.
func Emissions(in Input) (float64, error) {
	switch in.Mode {
	case ModeCustom, "":
		return positive(in.CustomKg), nil
	case ModeTransport:
		return positive(in.CarMiles)*CarKgPerMile + positive(in.FlightHours)*FlightKgPerHour, nil
	case ModeHome:
		return positive(in.MonthlyKWh) * HomeMonthsPerYear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, in.Mode)
	}
}

// Calculate estimates the offset cost and tree count of in.
func (c Calculator) Calculate(in Input) (Result, error) {
	kg, err := Emissions(in)
	if err != nil {
		return Result{}, err
	}
	if kg <= 0 {
		return Result{}, ErrNoEmissions
	}
	return Result{
		TotalKg: kg,
		Cost:    kg * c.PricePerKg,
		Trees:   int64(math.Ceil(kg / c.KgPerTree)),
	}, nil
}

// Calculate prices in with the default calculator.
func Calculate(in Input) (Result, error) {
	return NewCalculator(0, 0).Calculate(in)
}

// positive maps NaN and negatives to zero, as blank form fields do.
func positive(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
