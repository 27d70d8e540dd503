package myhealth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/app"
	"github.com/ranjidha/myHealth/internal/service"
	"github.com/ranjidha/myHealth/internal/store"
)

var (
	pullModeName string
	pullDryRun   bool
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Sync the published sheet into the local log",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := service.ParsePullMode(pullModeName)
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Source != "local" {
			return fmt.Errorf("pull writes the local log and cannot run against the read-only sheet source")
		}
		if cfg.SheetURL == "" {
			return fmt.Errorf("pull requires --sheet-url or MYHEALTH_SHEET_URL")
		}
		if err := app.EnsureDataDir(cfg.DataFile); err != nil {
			return err
		}

		src, cleanup, err := newSheetSource(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		st := store.Store{Path: cfg.DataFile}
		report, err := service.Pull(cmd.Context(), src, st, service.PullOptions{Mode: mode, DryRun: pullDryRun})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if report.DryRun {
			fmt.Fprintln(out, "Dry run; nothing written")
		}
		fmt.Fprintf(out, "Fetched: %d\n", report.Fetched)
		fmt.Fprintf(out, "Inserted: %d\n", report.Inserted)
		fmt.Fprintf(out, "Updated: %d\n", report.Updated)
		fmt.Fprintf(out, "Skipped: %d\n", report.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
	pullCmd.Flags().StringVar(&pullModeName, "mode", "merge", "Conflict mode: merge, replace, skip, or fail")
	pullCmd.Flags().BoolVar(&pullDryRun, "dry-run", false, "Report without writing")
}
