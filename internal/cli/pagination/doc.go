// Package pagination implements the --sort, --limit and --offset flags shared
// by the CarbonTrace listing commands (stages and compare).
//
//   - Params: flag values and validation
//   - Meta: the "showing X-Y of N" footer and JSON metadata
//   - StageSorter, ComparisonSorter: field-validated stable sorting
package pagination
