package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/carbontrace/internal/classify"
)

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		max   float64
		want  classify.Severity
	}{
		{name: "largest stage is critical", value: 3000, max: 3000, want: classify.SeverityCritical},
		{name: "80 percent is critical", value: 80, max: 100, want: classify.SeverityCritical},
		{name: "just under 80 is high", value: 79.9, max: 100, want: classify.SeverityHigh},
		{name: "50 percent is high", value: 50, max: 100, want: classify.SeverityHigh},
		{name: "under 50 is low", value: 450, max: 3000, want: classify.SeverityLow},
		{name: "zero max is low", value: 10, max: 0, want: classify.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify.SeverityOf(tt.value, tt.max))
		})
	}
}

func TestImpactLevel(t *testing.T) {
	assert.Equal(t, classify.ImpactNeedsImprovement, classify.ImpactLevel(100))
	assert.Equal(t, classify.ImpactNeedsImprovement, classify.ImpactLevel(70.1))
	assert.Equal(t, classify.ImpactModerate, classify.ImpactLevel(70))
	assert.Equal(t, classify.ImpactModerate, classify.ImpactLevel(40.1))
	assert.Equal(t, classify.ImpactMostEcoFriendly, classify.ImpactLevel(40))
	assert.Equal(t, classify.ImpactMostEcoFriendly, classify.ImpactLevel(0))
}

func TestScoreTier(t *testing.T) {
	assert.Equal(t, classify.TierLow, classify.ScoreTier(100))
	assert.Equal(t, classify.TierLow, classify.ScoreTier(70))
	assert.Equal(t, classify.TierMedium, classify.ScoreTier(69))
	assert.Equal(t, classify.TierMedium, classify.ScoreTier(40))
	assert.Equal(t, classify.TierHigh, classify.ScoreTier(39))
	assert.Equal(t, classify.TierHigh, classify.ScoreTier(-20))
}

func TestDefaultColor_Cycles(t *testing.T) {
	assert.Equal(t, "#16a34a", classify.DefaultColor(0))
	assert.Equal(t, "#ea580c", classify.DefaultColor(4))
	assert.Equal(t, "#16a34a", classify.DefaultColor(5))
	assert.Equal(t, "#0891b2", classify.DefaultColor(-1))
}

func TestRankingOf(t *testing.T) {
	assert.Equal(t, classify.RankingFirst, classify.RankingOf(0, 4))
	assert.Equal(t, classify.RankingMiddle, classify.RankingOf(1, 4))
	assert.Equal(t, classify.RankingLast, classify.RankingOf(3, 4))
	assert.Equal(t, classify.RankingFirst, classify.RankingOf(0, 1))
}
