package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/logging"
)

// ErrInvalidFilter is returned for a malformed or unknown --filter expression.
var ErrInvalidFilter = errors.New("invalid filter")

// stageFilterKeys are the fields a stage filter can match. Matching is
// case-insensitive; "stage" matches a substring, the others match exactly.
//
//nolint:gochecknoglobals // Read-only lookup table.
var stageFilterKeys = map[string]func(emissions.StageBreakdown) string{
	"stage":    func(b emissions.StageBreakdown) string { return b.Stage },
	"tier":     func(b emissions.StageBreakdown) string { return b.Tier.String() },
	"severity": func(b emissions.StageBreakdown) string { return string(b.Severity) },
}

// ValidateFilter checks a "key=value" stage filter.
func ValidateFilter(filter string) error {
	key, value, ok := strings.Cut(filter, "=")
	if !ok || strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w %q: use key=value", ErrInvalidFilter, filter)
	}
	if _, known := stageFilterKeys[strings.ToLower(strings.TrimSpace(key))]; !known {
		keys := make([]string, 0, len(stageFilterKeys))
		for k := range stageFilterKeys {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		return fmt.Errorf("%w %q: unknown key %q (valid: %s)", ErrInvalidFilter, filter, key, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyFilters validates every filter, then narrows rows by each in turn.
// Empty filters are ignored; an invalid filter returns nil and the error
// without applying any.
func ApplyFilters(
	ctx context.Context,
	rows []emissions.StageBreakdown,
	filters []string,
) ([]emissions.StageBreakdown, error) {
	log := logging.FromContext(ctx)

	if len(filters) == 0 {
		return rows, nil
	}

	for _, f := range filters {
		if f == "" {
			continue
		}
		if err := ValidateFilter(f); err != nil {
			log.Warn().Ctx(ctx).
				Str("component", "cli").
				Str("operation", "apply_filters").
				Str("filter", f).
				Err(err).
				Msg("invalid filter expression")
			return nil, err
		}
	}

	result := rows
	for _, f := range filters {
		if f == "" {
			continue
		}
		before := len(result)
		result = filterStages(result, f)
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Str("filter", f).
			Int("before", before).
			Int("after", len(result)).
			Msg("applied filter")
	}

	if len(result) == 0 && len(rows) > 0 {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "apply_filters").
			Int("original_count", len(rows)).
			Msg("no stages match filter criteria")
	}
	return result, nil
}

func filterStages(rows []emissions.StageBreakdown, filter string) []emissions.StageBreakdown {
	key, value, _ := strings.Cut(filter, "=")
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.ToLower(strings.TrimSpace(value))
	field := stageFilterKeys[key]

	out := make([]emissions.StageBreakdown, 0, len(rows))
	for _, r := range rows {
		got := strings.ToLower(field(r))
		if got == value || (key == "stage" && strings.Contains(got, value)) {
			out = append(out, r)
		}
	}
	return out
}
