// Package emissions holds the supply-chain emission data model and the
// aggregation logic every view is built on: totals, extremes, averages,
// per-stage ratios, sustainability scores, product comparison and
// average-relative alerts.
//
// All functions are pure. Callers own the slices they pass in and nothing
// here retains or mutates them.
package emissions

// Record is one supply-chain stage of a product and its carbon output in kg
// CO₂. Records are values; build them with NewRecord to get validation.
type Record struct {
	Stage          string  `yaml:"stage"                    json:"stage"`
	Emissions      float64 `yaml:"emissions"                json:"emissions"`
	Recommendation string  `yaml:"recommendation,omitempty" json:"recommendation,omitempty"`
}

// Profile is the ordered emission profile of one product. Record order is
// display order.
type Profile struct {
	Product string   `yaml:"product" json:"product"`
	Records []Record `yaml:"stages"  json:"stages"`
}

// WithRecord returns a copy of the profile with r appended. The receiver's
// backing array is never shared with the result.
func (p Profile) WithRecord(r Record) Profile {
	records := make([]Record, 0, len(p.Records)+1)
	records = append(records, p.Records...)
	records = append(records, r)
	return Profile{Product: p.Product, Records: records}
}

// ComparisonRecord is a product's total emissions across all its stages.
type ComparisonRecord struct {
	Product        string  `json:"product"`
	TotalEmissions float64 `json:"totalEmissions"`
}

// Metrics is the aggregate of a record list. It is derived on demand and
// never stored.
type Metrics struct {
	Total   float64 `json:"total"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
	Average float64 `json:"average"`
}
