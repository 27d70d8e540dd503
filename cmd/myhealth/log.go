package myhealth

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/coerce"
	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/service"
	"github.com/ranjidha/myHealth/internal/store"
)

var (
	logDate      string
	logWeight    string
	logSurya     int
	logWater     int
	logFasting   int
	logBreakfast string
	logLunch     string
	logDinner    string
	logSnacks    string
	logNotes     string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log or replace one day's entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := model.Today()
		if strings.TrimSpace(logDate) != "" {
			var err error
			date, err = parseDayFlag("--date", logDate)
			if err != nil {
				return err
			}
		}

		entry := model.DailyLog{
			Date:          date,
			WeightLbs:     coerce.Float(logWeight),
			SuryaNamaskar: logSurya,
			WaterGlasses:  logWater,
			FastingHours:  logFasting,
			Breakfast:     strings.TrimSpace(logBreakfast),
			Lunch:         strings.TrimSpace(logLunch),
			Dinner:        strings.TrimSpace(logDinner),
			Snacks:        strings.TrimSpace(logSnacks),
			Notes:         strings.TrimSpace(logNotes),
		}
		if err := service.ValidateDailyLog(entry); err != nil {
			return err
		}

		return withLocalStore(func(st store.Store, logs []model.DailyLog) error {
			logs = store.Upsert(logs, entry)
			if err := st.Persist(logs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry for %s (%d total entries)\n", entry.Date, len(logs))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default today)")
	logCmd.Flags().StringVar(&logWeight, "weight", "", "Weight in pounds (blank = not measured)")
	logCmd.Flags().IntVar(&logSurya, "surya", 0, "Surya namaskar rounds")
	logCmd.Flags().IntVar(&logWater, "water", 0, "Glasses of water (8 oz)")
	logCmd.Flags().IntVar(&logFasting, "fasting", 0, "Fasting window in hours")
	logCmd.Flags().StringVar(&logBreakfast, "breakfast", "", "Breakfast description")
	logCmd.Flags().StringVar(&logLunch, "lunch", "", "Lunch description")
	logCmd.Flags().StringVar(&logDinner, "dinner", "", "Dinner description")
	logCmd.Flags().StringVar(&logSnacks, "snacks", "", "Snacks description")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Optional notes")
}
