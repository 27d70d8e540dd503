package myhealth

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/service"
)

var (
	listFrom string
	listTo   string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDayFlag("--from", listFrom)
		if err != nil {
			return err
		}
		to, err := parseDayFlag("--to", listTo)
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

		if listJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(logs)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT_LBS\tSURYA\tWATER\tFASTING_H\tNOTES")
		for _, entry := range logs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\t%d\t%s\n",
				entry.Date, formatWeight(entry.WeightLbs), entry.SuryaNamaskar, entry.WaterGlasses, entry.FastingHours, entry.Notes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFrom, "from", "", "Filter from date YYYY-MM-DD")
	listCmd.Flags().StringVar(&listTo, "to", "", "Filter to date YYYY-MM-DD")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output JSON")
}
