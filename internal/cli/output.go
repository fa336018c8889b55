package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rshade/carbontrace/internal/config"
	"github.com/rshade/carbontrace/internal/greenops"
)

// OutputFormat selects how listing commands render.
type OutputFormat string

// Output formats.
const (
	OutputTable  OutputFormat = config.FormatTable
	OutputJSON   OutputFormat = config.FormatJSON
	OutputNDJSON OutputFormat = config.FormatNDJSON
)

const tabPadding = 2

// ParseOutputFormat validates a format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputTable, OutputJSON, OutputNDJSON:
		return f, nil
	case "":
		return OutputTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use table, json or ndjson)", s)
	}
}

// ExitError carries a process exit code for a failed check that is not a
// program error, such as critical alerts with --fail-on-critical.
type ExitError struct {
	Code   int
	Reason string
}

func (e *ExitError) Error() string {
	return e.Reason
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderNDJSON writes one compact JSON document per item.
func renderNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// newTable returns a tabwriter with the given header row and its underline.
func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	underline := make([]string, len(headers))
	for i, h := range headers {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(underline, "\t"))
	return tw
}

// formatPercent formats a percentage with output.precision decimals.
func formatPercent(pct float64) string {
	return greenops.FormatFloat(pct, config.GetOutputPrecision()) + "%"
}
