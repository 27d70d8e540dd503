package service

import (
	"fmt"

	"github.com/ranjidha/myHealth/internal/model"
)

// ValidateDailyLog checks a record built from user input before it
// reaches the store. Rows loaded from disk or the sheet are never
// validated; load-time coercion already normalized them.
func ValidateDailyLog(entry model.DailyLog) error {
	if entry.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if entry.WeightLbs != nil && *entry.WeightLbs <= 0 {
		return fmt.Errorf("weight must be > 0 lbs")
	}
	if err := validateNonNegativeInt("surya namaskar count", entry.SuryaNamaskar); err != nil {
		return err
	}
	if err := validateNonNegativeInt("water glasses", entry.WaterGlasses); err != nil {
		return err
	}
	if entry.FastingHours < 0 || entry.FastingHours > 24 {
		return fmt.Errorf("fasting window must be between 0 and 24 hours")
	}
	return nil
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}
