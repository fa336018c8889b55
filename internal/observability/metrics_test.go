package observability_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/dataset"
	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/observability"
)

func TestObserve_DefaultCatalog(t *testing.T) {
	m := observability.NewMetricsForTesting()
	assert.False(t, m.Observed())

	m.Observe(dataset.Default())
	assert.True(t, m.Observed())

	assert.InDelta(t, 3000.0, testutil.ToFloat64(m.StageEmissions.WithLabelValues("coffee", "Transport")), 0)
	assert.InDelta(t, 0.4, testutil.ToFloat64(m.StageRatio.WithLabelValues("coffee", "Production")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.StageTier.WithLabelValues("coffee", "Transport", "high")), 0)
	assert.InDelta(t, 6100.0, testutil.ToFloat64(m.ProductTotal.WithLabelValues("cocoa")), 0)
	assert.InDelta(t, 31.0, testutil.ToFloat64(m.SustainabilityScore.WithLabelValues("mango")), 0)
	assert.InDelta(t, 0.0, testutil.ToFloat64(m.SustainabilityScore.WithLabelValues("cocoa")), 0)
	assert.InDelta(t, 4.0, testutil.ToFloat64(m.Products), 0)

	assert.Equal(t, 16, testutil.CollectAndCount(m.StageEmissions))
}

func TestObserve_ReplacesPreviousState(t *testing.T) {
	m := observability.NewMetricsForTesting()
	m.Observe(dataset.Default())

	small, err := dataset.New([]dataset.Product{{
		ID:     "tea",
		Stages: []emissions.Record{{Stage: "Growing", Emissions: 10}},
	}})
	require.NoError(t, err)
	m.Observe(small)

	assert.Equal(t, 1, testutil.CollectAndCount(m.StageEmissions))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ProductTotal))
}

func TestObserve_DuplicateStageNamesAreSummed(t *testing.T) {
	cat, err := dataset.Default().WithStage("coffee", emissions.Record{Stage: "Transport", Emissions: 500})
	require.NoError(t, err)

	m := observability.NewMetricsForTesting()
	m.Observe(cat)

	assert.InDelta(t, 3500.0, testutil.ToFloat64(m.StageEmissions.WithLabelValues("coffee", "Transport")), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.StageRatio.WithLabelValues("coffee", "Transport")), 1e-9)
	assert.InDelta(t, 1200.0/3500.0, testutil.ToFloat64(m.StageRatio.WithLabelValues("coffee", "Production")), 1e-9)
	assert.InDelta(t, 6250.0, testutil.ToFloat64(m.ProductTotal.WithLabelValues("coffee")), 0)

	assert.Equal(t, 16, testutil.CollectAndCount(m.StageEmissions))
	assert.Equal(t, 16, testutil.CollectAndCount(m.StageTier))
}

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg, classify.DefaultThresholds())
	m.Observe(dataset.Default())

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "carbontrace_stage_emissions_kg")
	assert.Contains(t, names, "carbontrace_stage_ratio")
	assert.Contains(t, names, "carbontrace_product_total_kg")
	assert.Contains(t, names, "carbontrace_product_sustainability_score")
}
