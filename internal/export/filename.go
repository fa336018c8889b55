package export

import (
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
)

// Kind identifies an export artifact.
type Kind string

// Export kinds.
const (
	KindEmissions  Kind = "emissions"
	KindComparison Kind = "comparison"
	KindReport     Kind = "report"
)

const dateLayout = "2006-01-02"

// Filename returns the dated file name for kind, using the UTC date of
// clock. product is ignored for comparison and report kinds.
func Filename(kind Kind, product string, clock clockwork.Clock) string {
	date := clock.Now().UTC().Format(dateLayout)
	switch kind {
	case KindComparison:
		return fmt.Sprintf("product_comparison_%s.csv", date)
	case KindReport:
		return fmt.Sprintf("carbonTrace_report_%s.txt", date)
	default:
		return fmt.Sprintf("%s_emissions_%s.csv", product, date)
	}
}

// ReportFilename returns the dated file name of a typed report, for example
// executive_summary_coffee_2024-03-01.txt.
func ReportFilename(t ReportType, product string, clock clockwork.Clock) string {
	if t == ReportSummary {
		return Filename(KindReport, product, clock)
	}
	label := strings.Join(strings.Fields(strings.ToLower(t.Label())), "_")
	return fmt.Sprintf("%s_%s_%s.txt", label, product, clock.Now().UTC().Format(dateLayout))
}
