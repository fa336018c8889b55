package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the message printer used for thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with exactly precision fraction digits and
// thousand separators on the integer part.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	// Round half away from zero before formatting so ties like 781.25 go up.
	multiplier := math.Pow(10, float64(precision)) //nolint:mnd // Decimal base.
	rounded := math.Round(f*multiplier) / multiplier

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")

	negative := strings.HasPrefix(intPart, "-")
	n, err := strconv.ParseInt(strings.TrimPrefix(intPart, "-"), 10, 64)
	if err != nil {
		return formatted
	}

	grouped := FormatNumber(n)
	if negative {
		grouped = "-" + grouped
	}
	return grouped + "." + fracPart
}

// FormatEmissions formats an emission value the way a default locale
// formatter does: thousand separators and at most three fraction digits,
// with trailing zeros removed.
// Example: FormatEmissions(1234.5) returns "1,234.5".
func FormatEmissions(v float64) string {
	s := FormatFloat(v, maxFractionDigits)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatEmissionTooltip formats an emission value with its unit.
// Example: FormatEmissionTooltip(1234) returns "1,234 kg CO₂".
func FormatEmissionTooltip(v float64) string {
	return FormatEmissions(v) + " " + CO2Unit
}

// FormatAxisValue formats a value in thousands with one decimal.
// Example: FormatAxisValue(1234) returns "1.2k".
func FormatAxisValue(v float64) string {
	return fmt.Sprintf("%.1fk", RoundTenth(v/AxisUnitDivisor))
}

// FormatPercentage formats a ratio (0-1) as a percentage with one decimal.
// Example: FormatPercentage(0.1667) returns "16.7%".
func FormatPercentage(ratio float64) string {
	return fmt.Sprintf("%.1f%%", RoundTenth(ratio*100)) //nolint:mnd // Ratio to percent.
}

// FormatShare formats a value that is already a percentage.
// Example: FormatShare(52.17) returns "52.2%".
func FormatShare(pct float64) string {
	return fmt.Sprintf("%.1f%%", RoundTenth(pct))
}

// FormatSignedPercent formats a percentage change with an explicit sign
// for increases. Example: FormatSignedPercent(-12.5) returns "-12.5%".
func FormatSignedPercent(pct float64) string {
	pct = RoundTenth(pct)
	if pct > 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// RoundTenth rounds x to one decimal place with halves away from zero, so
// 1.25 becomes 1.3 where fmt's %.1f would print 1.2.
func RoundTenth(x float64) float64 {
	r := math.Round(x*10) / 10 //nolint:mnd // One decimal.
	if r == 0 {
		return 0
	}
	return r
}

// FormatTonnes converts kilograms to tonnes with two decimals.
// Example: FormatTonnes(5750) returns "5.75 tonnes CO₂".
func FormatTonnes(kg float64) string {
	return fmt.Sprintf("%.2f tonnes CO₂", kg/TonsToKg)
}

// FormatCurrency formats a dollar amount with two decimals.
// Example: FormatCurrency(1234.5) returns "$1,234.50".
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-$" + FormatFloat(-v, 2) //nolint:mnd // Cents precision.
	}
	return "$" + FormatFloat(v, 2) //nolint:mnd // Cents precision.
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold use comma-separated format.
// Values at or above LargeNumberThreshold use "~X.X million" format.
// Values at or above BillionThreshold use "~X.X billion" format.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
