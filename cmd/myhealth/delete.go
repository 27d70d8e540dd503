package myhealth

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/model"
	"github.com/ranjidha/myHealth/internal/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <date>",
	Short: "Delete the entry for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := model.ParseDate(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", args[0])
		}

		return withLocalStore(func(st store.Store, logs []model.DailyLog) error {
			logs, deleted := store.Delete(logs, date)
			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry for %s\n", date)
				return nil
			}
			if err := st.Persist(logs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry for %s\n", date)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
