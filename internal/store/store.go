// Package store persists the health-log collection as a local CSV flat
// file. Mutations are pure slice operations; nothing touches disk until
// Persist rewrites the whole file.
package store

import (
	"fmt"
	"os"
	"sort"

	"github.com/ranjidha/myHealth/internal/logcsv"
	"github.com/ranjidha/myHealth/internal/model"
)

type Store struct {
	Path string
}

// Load reads the full collection from disk. A missing file is an empty
// collection, not an error; a file that exists but cannot be parsed is.
func (s Store) Load() ([]model.DailyLog, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.DailyLog{}, nil
		}
		return nil, fmt.Errorf("open health log: %w", err)
	}
	defer f.Close()

	logs, err := logcsv.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode health log: %w", err)
	}
	return logs, nil
}

// Persist rewrites the whole file from the given collection. In-memory
// changes made via Upsert and Delete survive a restart only after this
// is called.
func (s Store) Persist(logs []model.DailyLog) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create health log: %w", err)
	}
	if err := logcsv.Encode(f, logs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close health log: %w", err)
	}
	return nil
}

// Upsert replaces any record sharing rec's date and returns the
// collection re-sorted ascending. The whole row is replaced, never
// merged field by field.
func Upsert(logs []model.DailyLog, rec model.DailyLog) []model.DailyLog {
	out := make([]model.DailyLog, 0, len(logs)+1)
	for _, entry := range logs {
		if entry.Date.Equal(rec.Date) {
			continue
		}
		out = append(out, entry)
	}
	out = append(out, rec)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Delete removes the record for date if present. The bool lets callers
// tell "deleted" from "nothing to delete" without an error.
func Delete(logs []model.DailyLog, date model.Date) ([]model.DailyLog, bool) {
	out := make([]model.DailyLog, 0, len(logs))
	deleted := false
	for _, entry := range logs {
		if entry.Date.Equal(date) {
			deleted = true
			continue
		}
		out = append(out, entry)
	}
	return out, deleted
}
