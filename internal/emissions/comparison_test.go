package emissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/emissions"
)

func TestCompareProfiles_PreservesOrder(t *testing.T) {
	profiles := []emissions.Profile{
		{Product: "coffee", Records: []emissions.Record{{Stage: "p", Emissions: 5000}, {Stage: "t", Emissions: 750}}},
		{Product: "mango", Records: []emissions.Record{{Stage: "p", Emissions: 4200}}},
		{Product: "empty"},
	}

	got := emissions.CompareProfiles(profiles)
	require.Len(t, got, 3)
	assert.Equal(t, emissions.ComparisonRecord{Product: "coffee", TotalEmissions: 5750}, got[0])
	assert.Equal(t, emissions.ComparisonRecord{Product: "mango", TotalEmissions: 4200}, got[1])
	assert.Equal(t, emissions.ComparisonRecord{Product: "empty", TotalEmissions: 0}, got[2])
}

func TestRank(t *testing.T) {
	comparisons := []emissions.ComparisonRecord{
		{Product: "coffee", TotalEmissions: 5750},
		{Product: "mango", TotalEmissions: 4200},
		{Product: "cocoa", TotalEmissions: 6100},
		{Product: "avocado", TotalEmissions: 4980},
	}

	ranked := emissions.Rank(comparisons)
	require.Len(t, ranked, 4)

	wantOrder := []string{"mango", "avocado", "coffee", "cocoa"}
	wantScores := []int{31, 18, 6, 0}
	for i, rp := range ranked {
		assert.Equal(t, wantOrder[i], rp.Product)
		assert.Equal(t, i+1, rp.Rank)
		assert.Equal(t, wantScores[i], rp.SustainabilityScore, rp.Product)
	}

	assert.Equal(t, classify.RankingFirst, ranked[0].Position)
	assert.Equal(t, classify.RankingMiddle, ranked[1].Position)
	assert.Equal(t, classify.RankingLast, ranked[3].Position)
	assert.Equal(t, classify.ImpactNeedsImprovement, ranked[3].ImpactLevel)
	assert.InDelta(t, 100.0, ranked[3].PercentOfMax, 1e-9)

	// input untouched
	assert.Equal(t, "coffee", comparisons[0].Product)
}

func TestRank_ImpactLevelFollowsShareOfMax(t *testing.T) {
	ranked := emissions.Rank([]emissions.ComparisonRecord{
		{Product: "dirty", TotalEmissions: 1000},
		{Product: "mid", TotalEmissions: 600},
		{Product: "clean", TotalEmissions: 100},
	})
	require.Len(t, ranked, 3)

	assert.Equal(t, "clean", ranked[0].Product)
	assert.Equal(t, classify.ImpactMostEcoFriendly, ranked[0].ImpactLevel)
	assert.Equal(t, classify.ImpactModerate, ranked[1].ImpactLevel)
	assert.Equal(t, "dirty", ranked[2].Product)
	assert.Equal(t, 0, ranked[2].SustainabilityScore)
	assert.Equal(t, classify.ImpactNeedsImprovement, ranked[2].ImpactLevel)
}

func TestRank_StableForTies(t *testing.T) {
	ranked := emissions.Rank([]emissions.ComparisonRecord{
		{Product: "b", TotalEmissions: 10},
		{Product: "a", TotalEmissions: 10},
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, "b", ranked[0].Product)
	assert.Equal(t, "a", ranked[1].Product)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, emissions.Rank(nil))
}

func TestProfile_WithRecordDoesNotAlias(t *testing.T) {
	base := emissions.Profile{Product: "coffee", Records: make([]emissions.Record, 1, 4)}
	base.Records[0] = emissions.Record{Stage: "Production", Emissions: 1200}

	a := base.WithRecord(emissions.Record{Stage: "A", Emissions: 1})
	b := base.WithRecord(emissions.Record{Stage: "B", Emissions: 2})

	assert.Len(t, base.Records, 1)
	assert.Equal(t, "A", a.Records[1].Stage)
	assert.Equal(t, "B", b.Records[1].Stage)
}
