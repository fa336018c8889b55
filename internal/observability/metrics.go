// Package observability exports emission profiles as Prometheus gauges and
// serves them alongside health endpoints.
package observability

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/dataset"
	"github.com/rshade/carbontrace/internal/emissions"
)

const namespace = "carbontrace"

// Metrics holds the emission gauges.
type Metrics struct {
	StageEmissions      *prometheus.GaugeVec // labels: product, stage
	StageRatio          *prometheus.GaugeVec // labels: product, stage
	StageTier           *prometheus.GaugeVec // labels: product, stage, tier
	ProductTotal        *prometheus.GaugeVec // labels: product
	SustainabilityScore *prometheus.GaugeVec // labels: product
	Products            prometheus.Gauge

	thresholds classify.Thresholds
	observed   atomic.Bool
}

// NewMetrics creates the gauges and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, th classify.Thresholds) *Metrics {
	m := &Metrics{
		StageEmissions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_emissions_kg",
			Help:      "Emissions of one supply-chain stage in kg CO2.",
		}, []string{"product", "stage"}),
		StageRatio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_ratio",
			Help:      "Stage emissions divided by the product's largest stage.",
		}, []string{"product", "stage"}),
		StageTier: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stage_tier",
			Help:      "1 for the impact tier a stage falls into.",
		}, []string{"product", "stage", "tier"}),
		ProductTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "product_total_kg",
			Help:      "Total emissions of a product across all stages in kg CO2.",
		}, []string{"product"}),
		SustainabilityScore: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "product_sustainability_score",
			Help:      "Sustainability score of a product relative to the highest total (100 is cleanest).",
		}, []string{"product"}),
		Products: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_products",
			Help:      "Number of products in the observed catalog.",
		}),
		thresholds: th,
	}

	if reg != nil {
		reg.MustRegister(
			m.StageEmissions,
			m.StageRatio,
			m.StageTier,
			m.ProductTotal,
			m.SustainabilityScore,
			m.Products,
		)
	}
	return m
}

// NewMetricsForTesting creates unregistered metrics with default thresholds.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(nil, classify.DefaultThresholds())
}

// Observe replaces every gauge value with the state of cat.
func (m *Metrics) Observe(cat *dataset.Catalog) {
	m.StageEmissions.Reset()
	m.StageRatio.Reset()
	m.StageTier.Reset()
	m.ProductTotal.Reset()
	m.SustainabilityScore.Reset()

	products := cat.Products()
	highestTotal := emissions.MaxTotal(cat.Comparison())
	for _, p := range products {
		for _, row := range emissions.Breakdown(mergeStages(p.Stages), m.thresholds) {
			m.StageEmissions.WithLabelValues(p.ID, row.Stage).Set(row.Emissions)
			m.StageRatio.WithLabelValues(p.ID, row.Stage).Set(row.Ratio)
			m.StageTier.WithLabelValues(p.ID, row.Stage, row.Tier.String()).Set(1)
		}
		total := emissions.Total(p.Stages)
		m.ProductTotal.WithLabelValues(p.ID).Set(total)
		m.SustainabilityScore.WithLabelValues(p.ID).Set(float64(emissions.SustainabilityScore(total, highestTotal)))
	}
	m.Products.Set(float64(len(products)))
	m.observed.Store(true)
}

// mergeStages sums records sharing a stage name so each label set is written
// once. Stages keep their first-seen order.
func mergeStages(records []emissions.Record) []emissions.Record {
	merged := make([]emissions.Record, 0, len(records))
	index := make(map[string]int, len(records))
	for _, r := range records {
		if i, ok := index[r.Stage]; ok {
			merged[i].Emissions += r.Emissions
			continue
		}
		index[r.Stage] = len(merged)
		merged = append(merged, r)
	}
	return merged
}

// Observed reports whether Observe has run.
func (m *Metrics) Observed() bool {
	return m.observed.Load()
}
