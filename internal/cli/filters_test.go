package cli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/cli"
	"github.com/rshade/carbontrace/internal/emissions"
)

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	rows := emissions.Breakdown([]emissions.Record{
		{Stage: "Production", Emissions: 1200},
		{Stage: "Packaging", Emissions: 450},
		{Stage: "Transport", Emissions: 3000},
		{Stage: "Distribution", Emissions: 1100},
	}, classify.DefaultThresholds())

	tests := []struct {
		name       string
		filters    []string
		wantStages []string
		wantErr    bool
	}{
		{name: "no filters returns all stages", filters: nil,
			wantStages: []string{"Production", "Packaging", "Transport", "Distribution"}},
		{name: "empty string filter is ignored", filters: []string{""},
			wantStages: []string{"Production", "Packaging", "Transport", "Distribution"}},
		{name: "tier", filters: []string{"tier=high"}, wantStages: []string{"Transport"}},
		{name: "stage substring ignores case", filters: []string{"stage=TION"},
			wantStages: []string{"Production", "Distribution"}},
		{name: "filters combine", filters: []string{"stage=tion", "tier=low"},
			wantStages: []string{"Production", "Distribution"}},
		{name: "severity", filters: []string{"severity=critical"}, wantStages: []string{"Transport"}},
		{name: "no match", filters: []string{"stage=cooling"}, wantStages: []string{}},
		{name: "missing value", filters: []string{"tier="}, wantErr: true},
		{name: "unknown key", filters: []string{"color=red"}, wantErr: true},
		{name: "invalid filter blocks valid ones", filters: []string{"tier=high", "nonsense"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := cli.ApplyFilters(context.Background(), rows, tt.filters)
			if tt.wantErr {
				require.ErrorIs(t, err, cli.ErrInvalidFilter)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			stages := make([]string, 0, len(got))
			for _, r := range got {
				stages = append(stages, r.Stage)
			}
			assert.Equal(t, tt.wantStages, stages)
		})
	}
}
