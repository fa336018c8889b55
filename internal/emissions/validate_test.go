package emissions_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/emissions"
)

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name      string
		stage     string
		emissions float64
		wantErr   error
	}{
		{name: "valid", stage: "Transport", emissions: 3000},
		{name: "zero allowed", stage: "Idle", emissions: 0},
		{name: "blank stage", stage: "   ", emissions: 1, wantErr: emissions.ErrEmptyStage},
		{name: "negative", stage: "Refund", emissions: -1, wantErr: emissions.ErrNegativeEmissions},
		{name: "NaN", stage: "Broken", emissions: math.NaN(), wantErr: emissions.ErrNonFiniteEmissions},
		{name: "infinite", stage: "Broken", emissions: math.Inf(1), wantErr: emissions.ErrNonFiniteEmissions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := emissions.NewRecord(tt.stage, tt.emissions, " note ")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "note", r.Recommendation)
		})
	}
}

func TestValidate_ReportsPosition(t *testing.T) {
	err := emissions.Validate([]emissions.Record{
		{Stage: "ok", Emissions: 1},
		{Stage: "bad", Emissions: -4},
	})
	require.ErrorIs(t, err, emissions.ErrNegativeEmissions)
	assert.Contains(t, err.Error(), "record 1")

	require.NoError(t, emissions.Validate(nil))
}
