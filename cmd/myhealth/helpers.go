package myhealth

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/app"
	"github.com/ranjidha/myHealth/internal/cache"
	"github.com/ranjidha/myHealth/internal/config"
	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/provider/sheets"
	"github.com/ranjidha/myHealth/internal/service"
	"github.com/ranjidha/myHealth/internal/store"
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if sheetURL != "" {
		cfg.SheetURL = sheetURL
	}
	if cacheFile != "" {
		cfg.CacheFile = cacheFile
	}
	if sourceName != "" {
		cfg.Source = sourceName
	}

	switch cfg.Source {
	case "local", "sheet":
	default:
		return config.Config{}, fmt.Errorf("unknown source %q (want local or sheet)", cfg.Source)
	}
	if cfg.Source == "sheet" && cfg.SheetURL == "" {
		return config.Config{}, fmt.Errorf("sheet source requires --sheet-url or MYHEALTH_SHEET_URL")
	}
	return cfg, nil
}

// withLocalStore loads config and the local collection for a command
// that writes. The sheet source is read-only, so writes against it are
// rejected up front.
func withLocalStore(run func(store.Store, []model.DailyLog) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Source != "local" {
		return fmt.Errorf("sheet source is read-only; update the sheet directly or use --source local")
	}
	if err := app.EnsureDataDir(cfg.DataFile); err != nil {
		return err
	}
	st := store.Store{Path: cfg.DataFile}
	logs, err := st.Load()
	if err != nil {
		return err
	}
	return run(st, logs)
}

func newSheetSource(cfg config.Config) (*service.SheetSource, func(), error) {
	if err := app.EnsureDataDir(cfg.CacheFile); err != nil {
		return nil, nil, err
	}
	snapshots, err := cache.Open(cfg.CacheFile)
	if err != nil {
		return nil, nil, err
	}
	src := &service.SheetSource{
		Client:    &sheets.Client{URL: cfg.SheetURL},
		Snapshots: snapshots,
		TTL:       cfg.CacheTTL,
		Logger:    logger,
	}
	return src, func() { _ = snapshots.Close() }, nil
}

// loadFromSource reads the collection from whichever source the config
// selects.
func loadFromSource(ctx context.Context, cfg config.Config) ([]model.DailyLog, error) {
	if cfg.Source == "local" {
		st := store.Store{Path: cfg.DataFile}
		return st.Load()
	}
	src, cleanup, err := newSheetSource(cfg)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return src.Load(ctx)
}

func parseDayFlag(name, value string) (model.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return model.Date{}, nil
	}
	d, err := model.ParseDate(value)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return d, nil
}

func formatWeight(w *float64) string {
	if w == nil {
		return "-"
	}
	return strconv.FormatFloat(*w, 'f', 1, 64)
}

func formatDelta(d *float64) string {
	if d == nil {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f", *d)
}

func printEntry(cmd *cobra.Command, heading string, entry model.DailyLog) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", heading, entry.Date)
	fmt.Fprintf(out, "Weight: %s lbs\n", formatWeight(entry.WeightLbs))
	fmt.Fprintf(out, "Surya namaskar: %d\n", entry.SuryaNamaskar)
	fmt.Fprintf(out, "Water: %d glasses\n", entry.WaterGlasses)
	fmt.Fprintf(out, "Fasting: %d hours\n", entry.FastingHours)
	for _, meal := range []struct {
		label string
		text  string
	}{
		{"Breakfast", entry.Breakfast},
		{"Lunch", entry.Lunch},
		{"Dinner", entry.Dinner},
		{"Snacks", entry.Snacks},
		{"Notes", entry.Notes},
	} {
		if meal.text != "" {
			fmt.Fprintf(out, "%s: %s\n", meal.label, meal.text)
		}
	}
}
