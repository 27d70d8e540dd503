package service_test

import (
	"testing"

	"github.com/ranjidha/myHealth/internal/model"
)

func floatPtr(v float64) *float64 {
	return &v
}

func day(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) error: %v", s, err)
	}
	return d
}

func entry(t *testing.T, date string, weight *float64) model.DailyLog {
	t.Helper()
	return model.DailyLog{
		Date:      day(t, date),
		WeightLbs: weight,
	}
}
