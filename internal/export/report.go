package export

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"math"
	"strings"
	"text/template"
	"time"

	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/logging"
)

// ErrUnknownReportType is returned for report types Generate does not know.
var ErrUnknownReportType = errors.New("unknown report type")

//go:embed templates/*.tmpl
var templateFS embed.FS

//nolint:gochecknoglobals // Parsed once from embedded files.
var reportTemplates = template.Must(
	template.New("reports").Funcs(template.FuncMap{
		"num": greenops.FormatEmissions,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// ReportType selects the report body.
type ReportType string

// Report types.
const (
	ReportSummary    ReportType = "summary"
	ReportExecutive  ReportType = "executive"
	ReportTechnical  ReportType = "technical"
	ReportCompliance ReportType = "compliance"
	ReportInvestor   ReportType = "investor"
)

// ReportTypeInfo describes a report type for menus and help text.
type ReportTypeInfo struct {
	Type        ReportType `json:"type"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
}

//nolint:gochecknoglobals // Constant lookup table.
var reportTypes = []ReportTypeInfo{
	{ReportSummary, "Emission Report", "Totals, stage breakdown and product comparison"},
	{ReportExecutive, "Executive Summary", "High-level overview for stakeholders"},
	{ReportTechnical, "Technical Report", "Detailed technical analysis"},
	{ReportCompliance, "Compliance Report", "Regulatory compliance documentation"},
	{ReportInvestor, "Investor Presentation", "Financial and sustainability metrics"},
}

// ReportTypes lists every report type in menu order.
func ReportTypes() []ReportTypeInfo {
	out := make([]ReportTypeInfo, len(reportTypes))
	copy(out, reportTypes)
	return out
}

// ParseReportType resolves a report type by value or label, ignoring case.
func ParseReportType(s string) (ReportType, error) {
	key := strings.TrimSpace(s)
	for _, info := range reportTypes {
		if strings.EqualFold(string(info.Type), key) || strings.EqualFold(info.Label, key) {
			return info.Type, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportType, s)
}

// Valid reports whether t is a known report type.
func (t ReportType) Valid() bool {
	for _, info := range reportTypes {
		if info.Type == t {
			return true
		}
	}
	return false
}

// Label returns the display label, or "Report" for unknown types.
func (t ReportType) Label() string {
	for _, info := range reportTypes {
		if info.Type == t {
			return info.Label
		}
	}
	return "Report"
}

// ReportInput is the data a report is generated from.
type ReportInput struct {
	Product     string
	Records     []emissions.Record
	Comparison  []emissions.ComparisonRecord
	GeneratedAt time.Time
}

// Financial rates applied to total emissions (USD per kg).
const (
	NeutralityCostPerKg = 0.02
	RiskExposurePerKg   = 0.05
	EnergySavingsPerKg  = 0.03
	OffsetInvestPerKg   = 0.02

	kgPerTonne = 1000
)

// reportData is the template context.
type reportData struct {
	Product    string
	Label      string
	Date       string
	Total      float64
	StageCount int
	Highest    emissions.Record
	Records    []emissions.Record
	Comparison []emissions.ComparisonRecord
}

// Share formats v as a one-decimal percentage of the report total.
func (d reportData) Share(v float64) string {
	return fmt.Sprintf("%.1f", greenops.RoundTenth(emissions.ShareOfTotal(v, d.Total)))
}

// Tonnes formats the total in tonnes with two decimals.
func (d reportData) Tonnes() string {
	return fmt.Sprintf("%.2f", d.Total/kgPerTonne)
}

// NeutralityCost is the dollar cost of offsetting the total.
func (d reportData) NeutralityCost() string {
	return fmt.Sprintf("%.2f", d.Total*NeutralityCostPerKg)
}

// RiskExposure, EnergySavings and OffsetInvestment are shown in thousands
// of dollars, rounded half away from zero.
func (d reportData) RiskExposure() string { return whole(d.Total * RiskExposurePerKg) }

func (d reportData) EnergySavings() string { return whole(d.Total * EnergySavingsPerKg) }

func (d reportData) OffsetInvestment() string { return whole(d.Total * OffsetInvestPerKg) }

func whole(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}

// Generate renders the plain-text report of type t. The profile must hold at
// least one record.
func Generate(ctx context.Context, t ReportType, in ReportInput) (string, error) {
	log := logging.FromContext(ctx)

	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownReportType, t)
	}
	highest, err := emissions.HighestStage(in.Records)
	if err != nil {
		return "", fmt.Errorf("generating %s report: %w", t, err)
	}

	generated := in.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	data := reportData{
		Product:    in.Product,
		Label:      t.Label(),
		Date:       generated.Format("1/2/2006"),
		Total:      emissions.Total(in.Records),
		StageCount: len(in.Records),
		Highest:    highest,
		Records:    in.Records,
		Comparison: in.Comparison,
	}

	var buf bytes.Buffer
	if err := reportTemplates.ExecuteTemplate(&buf, string(t), data); err != nil {
		return "", fmt.Errorf("rendering %s report: %w", t, err)
	}

	log.Debug().
		Str("component", "export").
		Str("operation", "generate_report").
		Str("report_type", string(t)).
		Str("product", in.Product).
		Int("stage_count", len(in.Records)).
		Msg("report generated")

	return strings.TrimSpace(buf.String()) + "\n", nil
}
