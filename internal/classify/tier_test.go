package classify_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/classify"
)

func TestClassify_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  classify.Tier
	}{
		{name: "zero is low", ratio: 0, want: classify.TierLow},
		{name: "0.1667 is low", ratio: 100.0 / 600.0, want: classify.TierLow},
		{name: "exactly 0.4 is low", ratio: 0.4, want: classify.TierLow},
		{name: "just above 0.4 is medium", ratio: 0.4000001, want: classify.TierMedium},
		{name: "0.5 is medium", ratio: 0.5, want: classify.TierMedium},
		{name: "exactly 0.7 is medium", ratio: 0.7, want: classify.TierMedium},
		{name: "just above 0.7 is high", ratio: 0.7000001, want: classify.TierHigh},
		{name: "1.0 is high", ratio: 1.0, want: classify.TierHigh},
		{name: "above 1 is high", ratio: 3.5, want: classify.TierHigh},
		{name: "infinity is high", ratio: math.Inf(1), want: classify.TierHigh},
		{name: "NaN is low", ratio: math.NaN(), want: classify.TierLow},
		{name: "negative is low", ratio: -0.5, want: classify.TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify.Classify(tt.ratio))
		})
	}
}

func TestClassifyValue(t *testing.T) {
	assert.Equal(t, classify.TierLow, classify.ClassifyValue(100, 600))
	assert.Equal(t, classify.TierMedium, classify.ClassifyValue(300, 600))
	assert.Equal(t, classify.TierHigh, classify.ClassifyValue(600, 600))
	assert.Equal(t, classify.TierLow, classify.ClassifyValue(600, 0), "zero max yields zero ratio")
	assert.Equal(t, classify.TierLow, classify.ClassifyValue(600, -1))
}

func TestThresholds_Custom(t *testing.T) {
	th := classify.Thresholds{Low: 0.2, Medium: 0.5}
	require.NoError(t, th.Validate())

	assert.Equal(t, classify.TierLow, th.Classify(0.2))
	assert.Equal(t, classify.TierMedium, th.Classify(0.3))
	assert.Equal(t, classify.TierHigh, th.Classify(0.6))
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name    string
		th      classify.Thresholds
		wantErr bool
	}{
		{name: "defaults", th: classify.DefaultThresholds()},
		{name: "zero low", th: classify.Thresholds{Low: 0, Medium: 0.1}},
		{name: "equal bounds", th: classify.Thresholds{Low: 0.5, Medium: 0.5}, wantErr: true},
		{name: "inverted", th: classify.Thresholds{Low: 0.8, Medium: 0.3}, wantErr: true},
		{name: "negative low", th: classify.Thresholds{Low: -0.1, Medium: 0.3}, wantErr: true},
		{name: "NaN", th: classify.Thresholds{Low: math.NaN(), Medium: 0.3}, wantErr: true},
		{name: "infinite medium", th: classify.Thresholds{Low: 0.1, Medium: math.Inf(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.th.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, classify.ErrInvalidThresholds)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTier_Tokens(t *testing.T) {
	tests := []struct {
		tier     classify.Tier
		str      string
		color    string
		gradient string
		label    string
		term     string
	}{
		{classify.TierLow, "low", "#10b981", "greenGradient", "Low impact", "42"},
		{classify.TierMedium, "medium", "#f59e0b", "amberGradient", "Moderate impact", "214"},
		{classify.TierHigh, "high", "#ef4444", "redGradient", "High impact", "196"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.tier.String())
			assert.Equal(t, tt.color, tt.tier.Color())
			assert.Equal(t, tt.gradient, tt.tier.Gradient())
			assert.Equal(t, tt.label, tt.tier.Label())
			assert.Equal(t, tt.term, tt.tier.TermColor())
		})
	}

	assert.Equal(t, "Tier(9)", classify.Tier(9).String())
}

func TestTier_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]classify.Tier{"tier": classify.TierMedium})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":"medium"}`, string(data))
}
