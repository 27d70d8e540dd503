package service

import (
	"github.com/ranjidha/myHealth/internal/model"
)

// ExportFileName is the fixed name offered for a filtered CSV download.
const ExportFileName = "health_log_filtered.csv"

// Summary is the metric block the dashboard renders above the charts.
type Summary struct {
	Entries             int      `json:"entries"`
	FirstDate           string   `json:"first_date,omitempty"`
	LatestDate          string   `json:"latest_date,omitempty"`
	LatestWeightLbs     *float64 `json:"latest_weight_lbs"`
	WeightDeltaLbs      *float64 `json:"weight_delta_lbs"`
	LatestSuryaNamaskar int      `json:"latest_surya_namaskar"`
	LatestWaterGlasses  int      `json:"latest_water_glasses_8oz"`
	LatestFastingHours  int      `json:"latest_fasting_window_hours"`
}

// BuildSummary derives the headline metrics for a collection. An empty
// collection yields Entries == 0 with every other field left at its
// zero value; callers should present that case instead of the metrics.
func BuildSummary(logs []model.DailyLog) Summary {
	summary := Summary{Entries: len(logs)}
	if len(logs) == 0 {
		return summary
	}
	earliest := Earliest(logs)
	latest := Latest(logs)
	summary.FirstDate = earliest.Date.String()
	summary.LatestDate = latest.Date.String()
	summary.LatestWeightLbs = latest.WeightLbs
	summary.WeightDeltaLbs = WeightDelta(logs)
	summary.LatestSuryaNamaskar = latest.SuryaNamaskar
	summary.LatestWaterGlasses = latest.WaterGlasses
	summary.LatestFastingHours = latest.FastingHours
	return summary
}
