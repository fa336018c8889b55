package emissions

// AlertLevel grades a stage against the profile average.
type AlertLevel string

// Alert levels.
const (
	AlertCritical AlertLevel = "critical"
	AlertModerate AlertLevel = "moderate"
	AlertLow      AlertLevel = "low"
)

// CriticalAverageMultiple is how far above the average a stage must sit to
// be critical.
const CriticalAverageMultiple = 1.5

// StageAlert is the alert level of one record.
type StageAlert struct {
	Record

	Level AlertLevel `json:"level"`
}

// AlertReport is the result of EvaluateAlerts.
type AlertReport struct {
	Average        float64      `json:"average"`
	Alerts         []StageAlert `json:"alerts"`
	Critical       int          `json:"critical"`
	Moderate       int          `json:"moderate"`
	Low            int          `json:"low"`
	CriticalStages []string     `json:"criticalStages"`
}

// HasCritical reports whether any stage is critical.
func (r AlertReport) HasCritical() bool {
	return r.Critical > 0
}

// AlertLevelFor grades emissions against average. Values above 1.5x the
// average are critical, values above the average are moderate.
func AlertLevelFor(emissions, average float64) AlertLevel {
	switch {
	case emissions > average*CriticalAverageMultiple:
		return AlertCritical
	case emissions > average:
		return AlertModerate
	default:
		return AlertLow
	}
}

// EvaluateAlerts grades every record in order against the list average.
func EvaluateAlerts(records []Record) (AlertReport, error) {
	avg, err := AverageE(records)
	if err != nil {
		return AlertReport{}, err
	}

	report := AlertReport{
		Average:        avg,
		Alerts:         make([]StageAlert, 0, len(records)),
		CriticalStages: []string{},
	}
	for _, r := range records {
		level := AlertLevelFor(r.Emissions, avg)
		report.Alerts = append(report.Alerts, StageAlert{Record: r, Level: level})
		switch level {
		case AlertCritical:
			report.Critical++
			report.CriticalStages = append(report.CriticalStages, r.Stage)
		case AlertModerate:
			report.Moderate++
		case AlertLow:
			report.Low++
		}
	}
	return report, nil
}
