package store_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/store"
)

func floatPtr(v float64) *float64 { return &v }

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	return store.Store{Path: filepath.Join(t.TempDir(), "health_log.csv")}
}

func TestLoadMissingFileReturnsEmptyCollection(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	logs, err := st.Load()
	if err != nil {
		t.Fatalf("load missing file: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(logs))
	}
}

func TestPersistLoadRoundTrip(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	logs := []model.DailyLog{
		{Date: model.NewDate(2024, time.January, 3), WaterGlasses: 6, FastingHours: 14},
		{Date: model.NewDate(2024, time.January, 5), WeightLbs: floatPtr(180.2), SuryaNamaskar: 12, Notes: "good run"},
	}
	if err := st.Persist(logs); err != nil {
		t.Fatalf("persist: %v", err)
	}
	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, logs) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, logs)
	}
}

func TestPersistOverwritesPriorContent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	first := []model.DailyLog{
		{Date: model.NewDate(2024, time.February, 1)},
		{Date: model.NewDate(2024, time.February, 2)},
		{Date: model.NewDate(2024, time.February, 3)},
	}
	if err := st.Persist(first); err != nil {
		t.Fatalf("persist first: %v", err)
	}
	second := []model.DailyLog{{Date: model.NewDate(2024, time.February, 9)}}
	if err := st.Persist(second); err != nil {
		t.Fatalf("persist second: %v", err)
	}
	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || !loaded[0].Date.Equal(second[0].Date) {
		t.Fatalf("expected full rewrite, got %+v", loaded)
	}
}

func TestLoadPropagatesCorruptFileErrors(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	broken := "date,notes\n2024-01-01,\"unterminated\n"
	if err := os.WriteFile(st.Path, []byte(broken), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected decode error for corrupt file")
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	t.Parallel()
	rec := model.DailyLog{Date: model.NewDate(2024, time.March, 1), WeightLbs: floatPtr(175), SuryaNamaskar: 8}
	logs := store.Upsert([]model.DailyLog{}, rec)
	logs = store.Upsert(logs, rec)
	if len(logs) != 1 {
		t.Fatalf("expected exactly one record after repeated upsert, got %d", len(logs))
	}
	if !reflect.DeepEqual(logs[0], rec) {
		t.Fatalf("upserted record mutated: %+v", logs[0])
	}
}

func TestUpsertReplacesWholeRecord(t *testing.T) {
	t.Parallel()
	date := model.NewDate(2024, time.March, 2)
	logs := []model.DailyLog{{Date: date, WeightLbs: floatPtr(181), Notes: "old"}}
	logs = store.Upsert(logs, model.DailyLog{Date: date, SuryaNamaskar: 12})
	if len(logs) != 1 {
		t.Fatalf("expected one record, got %d", len(logs))
	}
	if logs[0].WeightLbs != nil || logs[0].Notes != "" {
		t.Fatalf("expected full replacement, got merged record %+v", logs[0])
	}
	if logs[0].SuryaNamaskar != 12 {
		t.Fatalf("expected new surya value, got %d", logs[0].SuryaNamaskar)
	}
}

func TestUpsertKeepsCollectionSorted(t *testing.T) {
	t.Parallel()
	logs := []model.DailyLog{
		{Date: model.NewDate(2024, time.March, 1)},
		{Date: model.NewDate(2024, time.March, 9)},
	}
	logs = store.Upsert(logs, model.DailyLog{Date: model.NewDate(2024, time.March, 4)})
	if len(logs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if !logs[i-1].Date.Before(logs[i].Date) {
			t.Fatalf("collection not ascending after upsert")
		}
	}
}

func TestDeleteSignalsWhetherARecordWasRemoved(t *testing.T) {
	t.Parallel()
	date := model.NewDate(2024, time.April, 1)
	logs := store.Upsert([]model.DailyLog{}, model.DailyLog{Date: date, WaterGlasses: 8})

	logs, deleted := store.Delete(logs, date)
	if !deleted {
		t.Fatalf("expected delete to report true for present date")
	}
	if len(logs) != 0 {
		t.Fatalf("expected empty collection after delete, got %d", len(logs))
	}

	logs, deleted = store.Delete(logs, date)
	if deleted {
		t.Fatalf("expected delete to report false for absent date")
	}
	if len(logs) != 0 {
		t.Fatalf("expected collection unchanged, got %d", len(logs))
	}
}
