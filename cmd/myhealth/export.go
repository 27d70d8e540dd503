package myhealth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/logcsv"
	"github.com/ranjidha/myHealth/internal/service"
)

var (
	exportFrom string
	exportTo   string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered collection to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDayFlag("--from", exportFrom)
		if err != nil {
			return err
		}
		to, err := parseDayFlag("--to", exportTo)
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

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		if err := logcsv.Encode(f, logs); err != nil {
			f.Close()
			return fmt.Errorf("write export file: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close export file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(logs), exportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Filter from date YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Filter to date YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportOut, "out", service.ExportFileName, "Output file path")
}
