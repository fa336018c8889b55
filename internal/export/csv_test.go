package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/export"
)

func TestWriteRecordsCSV_QuotesOnlyCommas(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteRecordsCSV(&buf, []emissions.Record{
		{Stage: "Production", Emissions: 1200, Recommendation: "Switch to solar-powered equipment and sustainable farming practices."},
		{Stage: "Transport", Emissions: 3000.5, Recommendation: "Optimize routes, or ship by sea."},
		{Stage: "Cold, storage", Emissions: 0, Recommendation: `He said "hi"`},
	})
	require.NoError(t, err)

	want := "stage,emissions,recommendation\n" +
		"Production,1200,Switch to solar-powered equipment and sustainable farming practices.\n" +
		"Transport,3000.5,\"Optimize routes, or ship by sea.\"\n" +
		"\"Cold, storage\",0,He said \"hi\""
	assert.Equal(t, want, buf.String())
}

func TestWriteComparisonCSV(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteComparisonCSV(&buf, []emissions.ComparisonRecord{
		{Product: "Coffee", TotalEmissions: 5750},
		{Product: "Mango", TotalEmissions: 4200},
	})
	require.NoError(t, err)
	assert.Equal(t, "product,totalEmissions\nCoffee,5750\nMango,4200", buf.String())
}

func TestWriteRecordsCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteRecordsCSV(&buf, nil))
	assert.Equal(t, "stage,emissions,recommendation", buf.String())
}

func TestFilename(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, "coffee_emissions_2024-03-01.csv", export.Filename(export.KindEmissions, "coffee", clock))
	assert.Equal(t, "product_comparison_2024-03-01.csv", export.Filename(export.KindComparison, "coffee", clock))
	assert.Equal(t, "carbonTrace_report_2024-03-01.txt", export.Filename(export.KindReport, "coffee", clock))

	assert.Equal(t, "executive_summary_coffee_2024-03-01.txt",
		export.ReportFilename(export.ReportExecutive, "coffee", clock))
	assert.Equal(t, "investor_presentation_mango_2024-03-01.txt",
		export.ReportFilename(export.ReportInvestor, "mango", clock))
	assert.Equal(t, "carbonTrace_report_2024-03-01.txt",
		export.ReportFilename(export.ReportSummary, "mango", clock))
}

func TestFilename_UsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 2, 5, 0, 0, 0, loc))

	assert.Equal(t, "product_comparison_2024-03-01.csv", export.Filename(export.KindComparison, "", clock))
}
