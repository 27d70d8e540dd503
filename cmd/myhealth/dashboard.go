package myhealth

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/service"
)

var (
	dashboardFrom   string
	dashboardTo     string
	dashboardRecent int
	dashboardJSON   bool
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show summary metrics and habit trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDayFlag("--from", dashboardFrom)
		if err != nil {
			return err
		}
		to, err := parseDayFlag("--to", dashboardTo)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logs, err := loadFromSource(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		logs = service.FilterRange(logs, from, to)
		summary := service.BuildSummary(logs)

		if dashboardJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		out := cmd.OutOrStdout()
		if summary.Entries == 0 {
			fmt.Fprintln(out, "No entries logged yet")
			return nil
		}

		fmt.Fprintln(out, "Health Dashboard")
		fmt.Fprintf(out, "Entries: %d (%s .. %s)\n", summary.Entries, summary.FirstDate, summary.LatestDate)
		fmt.Fprintf(out, "Latest weight: %s lbs (%s since first entry)\n",
			formatWeight(summary.LatestWeightLbs), formatDelta(summary.WeightDeltaLbs))
		fmt.Fprintf(out, "Surya namaskar: %d  Water: %d glasses  Fasting: %dh\n",
			summary.LatestSuryaNamaskar, summary.LatestWaterGlasses, summary.LatestFastingHours)

		fmt.Fprintln(out, "\nTrends")
		fmt.Fprintf(out, "Weight  %s\n", sparkline(weightSeries(logs)))
		fmt.Fprintf(out, "Surya   %s\n", sparkline(intSeries(logs, func(e model.DailyLog) int { return e.SuryaNamaskar })))
		fmt.Fprintf(out, "Water   %s\n", sparkline(intSeries(logs, func(e model.DailyLog) int { return e.WaterGlasses })))
		fmt.Fprintf(out, "Fasting %s\n", sparkline(intSeries(logs, func(e model.DailyLog) int { return e.FastingHours })))

		fmt.Fprintln(out, "\nRecent entries")
		fmt.Fprintln(out, "DATE\tWEIGHT_LBS\tSURYA\tWATER\tFASTING_H\tNOTES")
		shown := 0
		for i := len(logs) - 1; i >= 0 && shown < dashboardRecent; i-- {
			entry := logs[i]
			fmt.Fprintf(out, "%s\t%s\t%d\t%d\t%d\t%s\n",
				entry.Date, formatWeight(entry.WeightLbs), entry.SuryaNamaskar, entry.WaterGlasses, entry.FastingHours, entry.Notes)
			shown++
		}
		return nil
	},
}

func sparkline(values []float64) string {
	if len(values) == 0 {
		return "(no data)"
	}
	chars := []rune("._-~=*#@")
	minV := values[0]
	maxV := values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		return strings.Repeat(string(chars[0]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		ratio := (v - minV) / (maxV - minV)
		idx := int(math.Round(ratio * float64(len(chars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

func weightSeries(logs []model.DailyLog) []float64 {
	out := make([]float64, 0, len(logs))
	for _, entry := range logs {
		if entry.WeightLbs != nil {
			out = append(out, *entry.WeightLbs)
		}
	}
	return out
}

func intSeries(logs []model.DailyLog, field func(model.DailyLog) int) []float64 {
	out := make([]float64, 0, len(logs))
	for _, entry := range logs {
		out = append(out, float64(field(entry)))
	}
	return out
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().StringVar(&dashboardFrom, "from", "", "Filter from date YYYY-MM-DD")
	dashboardCmd.Flags().StringVar(&dashboardTo, "to", "", "Filter to date YYYY-MM-DD")
	dashboardCmd.Flags().IntVar(&dashboardRecent, "recent", 7, "Recent entries to show")
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "Output summary JSON")
}
