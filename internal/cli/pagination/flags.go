package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Limits and defaults.
const (
	DefaultLimit     = 0 // 0 lists everything
	MaxLimit         = 10000
	DefaultOffset    = 0
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Common validation errors.
var (
	ErrInvalidLimit      = errors.New("limit must be between 0 and 10000")
	ErrInvalidOffset     = errors.New("offset must be non-negative")
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'emissions:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
	ErrInvalidSortField  = errors.New("invalid sort field")
)

// Params holds the listing flags of one command.
type Params struct {
	// Limit is the maximum number of rows; 0 means no limit.
	Limit int

	// Offset is the number of rows to skip.
	Offset int

	// SortField is the field to sort by (e.g. "emissions", "stage").
	SortField string

	// SortOrder is "asc" or "desc".
	SortOrder string
}

// NewParams returns Params with default values.
func NewParams() *Params {
	return &Params{
		Limit:     DefaultLimit,
		Offset:    DefaultOffset,
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
	}
}

// Validate checks the bounds of the parameters.
func (p Params) Validate() error {
	if p.Limit < 0 || p.Limit > MaxLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, p.Limit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOffset, p.Offset)
	}
	if p.SortOrder != "" && p.SortOrder != SortOrderAsc && p.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.SortOrder)
	}
	return nil
}

// IsEnabled reports whether any row window is requested.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0
}

// ParseSort parses a sort string in the format "field" or "field:order".
// An empty string yields the defaults.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}

	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// Apply returns the window of items selected by Offset and Limit. An offset
// past the end yields an empty slice.
func Apply[T any](p Params, items []T) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}

// Meta describes the window Apply selected.
type Meta struct {
	Offset  int  `json:"offset"`
	Shown   int  `json:"shown"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// NewMeta returns the metadata for a window of shown rows out of total.
func NewMeta(p Params, shown, total int) Meta {
	return Meta{
		Offset:  p.Offset,
		Shown:   shown,
		Total:   total,
		HasMore: p.Offset+shown < total,
	}
}

// Footer renders "Showing 1-3 of 5", or "" when every row is shown.
func (m Meta) Footer(noun string) string {
	if m.Shown == m.Total {
		return ""
	}
	if m.Shown == 0 {
		return fmt.Sprintf("No %s in range (%d total)", noun, m.Total)
	}
	return fmt.Sprintf("Showing %d-%d of %d %s", m.Offset+1, m.Offset+m.Shown, m.Total, noun)
}
