// Package service derives read-only views, summary statistics, and sync
// operations over a loaded health-log collection. Nothing here mutates
// its input.
package service

import (
	"github.com/ranjidha/myHealth/internal/model"
)

// FilterRange returns the records between from and to, inclusive on
// both bounds, preserving ascending order. A zero bound is unbounded on
// that side. An empty result is not an error.
func FilterRange(logs []model.DailyLog, from, to model.Date) []model.DailyLog {
	out := make([]model.DailyLog, 0, len(logs))
	for _, entry := range logs {
		if !from.IsZero() && entry.Date.Before(from) {
			continue
		}
		if !to.IsZero() && entry.Date.After(to) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Latest returns the record with the greatest date. Callers must check
// the collection is non-empty first.
func Latest(logs []model.DailyLog) model.DailyLog {
	latest := logs[0]
	for _, entry := range logs[1:] {
		if entry.Date.After(latest.Date) {
			latest = entry
		}
	}
	return latest
}

// Earliest returns the record with the smallest date. Callers must
// check the collection is non-empty first.
func Earliest(logs []model.DailyLog) model.DailyLog {
	earliest := logs[0]
	for _, entry := range logs[1:] {
		if entry.Date.Before(earliest.Date) {
			earliest = entry
		}
	}
	return earliest
}

// Delta computes latest-minus-earliest for a nullable numeric field.
// It returns nil when the collection has fewer than two records or
// when either endpoint's value is missing; a missing value is never
// treated as zero.
func Delta(logs []model.DailyLog, field func(model.DailyLog) *float64) *float64 {
	if len(logs) < 2 {
		return nil
	}
	first := field(Earliest(logs))
	last := field(Latest(logs))
	if first == nil || last == nil {
		return nil
	}
	d := *last - *first
	return &d
}

// WeightDelta is the change in body weight between the earliest and
// latest entries.
func WeightDelta(logs []model.DailyLog) *float64 {
	return Delta(logs, func(entry model.DailyLog) *float64 { return entry.WeightLbs })
}
