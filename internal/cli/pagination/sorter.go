package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/carbontrace/internal/emissions"
)

// Sorter sorts a listing by a named field.
type Sorter[T any] interface {
	// Sort returns a sorted copy of items. Invalid fields return items unchanged.
	Sort(items []T, field, order string) []T
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns the valid field names in sorted order.
	GetValidFields() []string
	// CheckField validates a non-empty field name.
	CheckField(field string) error
}

// fieldSorter implements Sorter with one less-function per field.
type fieldSorter[T any] struct {
	less map[string]func(a, b T) bool
}

// IsValidField checks if the field is valid for sorting.
func (s *fieldSorter[T]) IsValidField(field string) bool {
	_, ok := s.less[field]
	return ok
}

// GetValidFields returns all valid sort fields.
func (s *fieldSorter[T]) GetValidFields() []string {
	fields := make([]string, 0, len(s.less))
	for field := range s.less {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort sorts items by field and order using a stable sort on a copy.
func (s *fieldSorter[T]) Sort(items []T, field, order string) []T {
	less, ok := s.less[field]
	if !ok {
		return items
	}

	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swapping keeps equal elements in input order for desc too.
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// CheckField returns ErrInvalidSortField, listing the valid fields, when
// field is set but unknown.
func (s *fieldSorter[T]) CheckField(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}

// StageSorter sorts classified stage rows.
type StageSorter struct {
	fieldSorter[emissions.StageBreakdown]
}

// NewStageSorter returns a sorter over stage, emissions, ratio and share.
func NewStageSorter() *StageSorter {
	return &StageSorter{fieldSorter[emissions.StageBreakdown]{
		less: map[string]func(a, b emissions.StageBreakdown) bool{
			"stage":     func(a, b emissions.StageBreakdown) bool { return a.Stage < b.Stage },
			"emissions": func(a, b emissions.StageBreakdown) bool { return a.Emissions < b.Emissions },
			"ratio":     func(a, b emissions.StageBreakdown) bool { return a.Ratio < b.Ratio },
			"share":     func(a, b emissions.StageBreakdown) bool { return a.Share < b.Share },
			"tier":      func(a, b emissions.StageBreakdown) bool { return a.Tier < b.Tier },
		},
	}}
}

// ComparisonSorter sorts ranked products.
type ComparisonSorter struct {
	fieldSorter[emissions.RankedProduct]
}

// NewComparisonSorter returns a sorter over product, total, rank and score.
func NewComparisonSorter() *ComparisonSorter {
	return &ComparisonSorter{fieldSorter[emissions.RankedProduct]{
		less: map[string]func(a, b emissions.RankedProduct) bool{
			"product": func(a, b emissions.RankedProduct) bool { return a.Product < b.Product },
			"total":   func(a, b emissions.RankedProduct) bool { return a.TotalEmissions < b.TotalEmissions },
			"rank":    func(a, b emissions.RankedProduct) bool { return a.Rank < b.Rank },
			"score": func(a, b emissions.RankedProduct) bool {
				return a.SustainabilityScore < b.SustainabilityScore
			},
		},
	}}
}
