// Package export writes emission data out of the process: CSV files,
// plain-text reports and their terminal-rendered markdown form.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rshade/carbontrace/internal/emissions"
)

// CSV headers.
var (
	recordsHeader    = []string{"stage", "emissions", "recommendation"}
	comparisonHeader = []string{"product", "totalEmissions"}
)

// WriteRecordsCSV writes one row per stage under a stage,emissions,recommendation
// header. String fields are quoted only when they contain a comma.
func WriteRecordsCSV(w io.Writer, records []emissions.Record) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{quote(r.Stage), formatNumber(r.Emissions), quote(r.Recommendation)})
	}
	return writeRows(w, recordsHeader, rows)
}

// WriteComparisonCSV writes one row per product under a
// product,totalEmissions header.
func WriteComparisonCSV(w io.Writer, comparisons []emissions.ComparisonRecord) error {
	rows := make([][]string, 0, len(comparisons))
	for _, c := range comparisons {
		rows = append(rows, []string{quote(c.Product), formatNumber(c.TotalEmissions)})
	}
	return writeRows(w, comparisonHeader, rows)
}

// writeRows joins fields with commas and rows with newlines. There is no
// trailing newline after the last row.
func writeRows(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(header, ",")); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		if _, err := bw.WriteString("\n" + strings.Join(row, ",")); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func quote(s string) string {
	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}

// formatNumber prints the shortest representation, so 1200 stays "1200".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
