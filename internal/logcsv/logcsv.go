// Package logcsv reads and writes the canonical health-log CSV form
// shared by the published sheet export and the local data file.
package logcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ranjidha/myHealth/internal/coerce"
	"github.com/ranjidha/myHealth/internal/model"
)

// Columns is the canonical column set, in serialization order.
var Columns = []string{
	"date",
	"weight_lbs",
	"surya_namaskar",
	"water_glasses_8oz",
	"fasting_window_hours",
	"breakfast",
	"lunch",
	"dinner",
	"snacks",
	"notes",
}

// Decode reads header-prefixed CSV into the canonical collection.
// Header names match case- and whitespace-insensitively; recognized
// columns absent from the source read as all-blank; unrecognized
// columns are ignored. Rows whose date does not parse are dropped,
// duplicate dates keep the last occurrence, and the result is sorted
// ascending by date. Empty input decodes to an empty collection.
func Decode(r io.Reader) ([]model.DailyLog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []model.DailyLog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := headerIndex(header)

	logs := make([]model.DailyLog, 0)
	seen := make(map[model.Date]int)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		date, ok := coerce.Day(cell(row, idx["date"]))
		if !ok {
			continue
		}
		rec := model.DailyLog{
			Date:          date,
			WeightLbs:     coerce.Float(cell(row, idx["weight_lbs"])),
			SuryaNamaskar: coerce.Int(cell(row, idx["surya_namaskar"]), 0),
			WaterGlasses:  coerce.Int(cell(row, idx["water_glasses_8oz"]), 0),
			FastingHours:  coerce.Int(cell(row, idx["fasting_window_hours"]), 0),
			Breakfast:     coerce.Text(cell(row, idx["breakfast"])),
			Lunch:         coerce.Text(cell(row, idx["lunch"])),
			Dinner:        coerce.Text(cell(row, idx["dinner"])),
			Snacks:        coerce.Text(cell(row, idx["snacks"])),
			Notes:         coerce.Text(cell(row, idx["notes"])),
		}
		if at, dup := seen[date]; dup {
			logs[at] = rec
		} else {
			seen[date] = len(logs)
			logs = append(logs, rec)
		}
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.Before(logs[j].Date) })
	return logs, nil
}

// Encode writes the collection in canonical column order with dates as
// YYYY-MM-DD. A nil weight serializes as an empty cell.
func Encode(w io.Writer, logs []model.DailyLog) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range logs {
		weight := ""
		if entry.WeightLbs != nil {
			weight = strconv.FormatFloat(*entry.WeightLbs, 'f', -1, 64)
		}
		row := []string{
			entry.Date.String(),
			weight,
			strconv.Itoa(entry.SuryaNamaskar),
			strconv.Itoa(entry.WaterGlasses),
			strconv.Itoa(entry.FastingHours),
			entry.Breakfast,
			entry.Lunch,
			entry.Dinner,
			entry.Snacks,
			entry.Notes,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", entry.Date, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(Columns))
	for _, name := range Columns {
		idx[name] = -1
	}
	for i, raw := range header {
		name := normalizeHeader(raw)
		if at, recognized := idx[name]; recognized && at == -1 {
			idx[name] = i
		}
	}
	return idx
}

func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "﻿")
	return strings.ToLower(strings.TrimSpace(name))
}

// cell returns "" for columns absent from the source or rows shorter
// than the header.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
