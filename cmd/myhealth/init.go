package myhealth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/app"
	"github.com/ranjidha/myHealth/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local health log",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := app.EnsureDataDir(cfg.DataFile); err != nil {
			return err
		}

		if _, err := os.Stat(cfg.DataFile); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Health log already initialized at %s\n", cfg.DataFile)
			return nil
		}

		st := store.Store{Path: cfg.DataFile}
		if err := st.Persist(nil); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized health log at %s\n", cfg.DataFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
