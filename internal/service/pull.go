package service

import (
	"context"
	"fmt"

	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/store"
)

// PullMode controls how remote entries reconcile with local ones that
// share a date.
type PullMode string

const (
	// PullMerge overwrites local entries with their remote versions.
	PullMerge PullMode = "merge"
	// PullReplace discards the local collection entirely.
	PullReplace PullMode = "replace"
	// PullSkip keeps local entries and only adds new dates.
	PullSkip PullMode = "skip"
	// PullFail aborts without writing if any date exists on both sides.
	PullFail PullMode = "fail"
)

// ParsePullMode validates a mode name from a flag or config value.
func ParsePullMode(s string) (PullMode, error) {
	switch PullMode(s) {
	case PullMerge, PullReplace, PullSkip, PullFail:
		return PullMode(s), nil
	default:
		return "", fmt.Errorf("unknown pull mode %q (want merge, replace, skip, or fail)", s)
	}
}

// PullReport summarizes what a pull did, or would do under dry-run.
type PullReport struct {
	Mode     PullMode `json:"mode"`
	DryRun   bool     `json:"dry_run"`
	Fetched  int      `json:"fetched"`
	Inserted int      `json:"inserted"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
}

// PullOptions configures a Pull run.
type PullOptions struct {
	Mode   PullMode
	DryRun bool
}

// MergeLogs folds remote entries into the local collection according
// to mode. The returned collection is sorted ascending by date, and
// the report counts how each remote entry landed.
func MergeLogs(local, remote []model.DailyLog, mode PullMode) ([]model.DailyLog, PullReport, error) {
	report := PullReport{Mode: mode, Fetched: len(remote)}

	if mode == PullReplace {
		merged := make([]model.DailyLog, len(remote))
		copy(merged, remote)
		report.Inserted = len(remote)
		return merged, report, nil
	}

	have := make(map[model.Date]bool, len(local))
	for _, rec := range local {
		have[rec.Date] = true
	}

	if mode == PullFail {
		for _, rec := range remote {
			if have[rec.Date] {
				return nil, report, fmt.Errorf("entry for %s already exists locally; rerun with --mode merge or skip", rec.Date)
			}
		}
	}

	merged := make([]model.DailyLog, len(local))
	copy(merged, local)
	for _, rec := range remote {
		if have[rec.Date] {
			switch mode {
			case PullSkip:
				report.Skipped++
				continue
			default:
				report.Updated++
			}
		} else {
			report.Inserted++
		}
		merged = store.Upsert(merged, rec)
	}
	return merged, report, nil
}

// Pull fetches the published sheet, merges it into the local file, and
// persists the result unless opts.DryRun is set.
func Pull(ctx context.Context, src *SheetSource, st store.Store, opts PullOptions) (PullReport, error) {
	remote, err := src.Load(ctx)
	if err != nil {
		return PullReport{Mode: opts.Mode, DryRun: opts.DryRun}, err
	}

	local, err := st.Load()
	if err != nil {
		return PullReport{Mode: opts.Mode, DryRun: opts.DryRun}, err
	}

	merged, report, err := MergeLogs(local, remote, opts.Mode)
	report.DryRun = opts.DryRun
	if err != nil {
		return report, err
	}

	if !opts.DryRun {
		if err := st.Persist(merged); err != nil {
			return report, err
		}
	}
	return report, nil
}
