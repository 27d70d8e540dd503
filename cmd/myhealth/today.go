package myhealth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/service"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's entry, or the latest one logged",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logs, err := loadFromSource(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if len(logs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No entries logged yet")
			return nil
		}

		today := model.Today()
		for _, entry := range logs {
			if entry.Date.Equal(today) {
				printEntry(cmd, "Today", entry)
				return nil
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No entry for today")
		printEntry(cmd, "Latest entry", service.Latest(logs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
