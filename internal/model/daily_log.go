package model

// DailyLog is one day's health entry, uniquely keyed by Date.
// WeightLbs is nil when no weight was recorded that day; the integer
// counts default to 0 and the text fields to "".
type DailyLog struct {
	Date          Date     `json:"date"`
	WeightLbs     *float64 `json:"weight_lbs"`
	SuryaNamaskar int      `json:"surya_namaskar"`
	WaterGlasses  int      `json:"water_glasses_8oz"`
	FastingHours  int      `json:"fasting_window_hours"`
	Breakfast     string   `json:"breakfast"`
	Lunch         string   `json:"lunch"`
	Dinner        string   `json:"dinner"`
	Snacks        string   `json:"snacks"`
	Notes         string   `json:"notes"`
}
