package myhealth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	dataFile   string
	sheetURL   string
	cacheFile  string
	sourceName string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "myhealth",
	Short: "myhealth tracks daily weight and habits from your terminal",
	Long:  "myhealth is a local-first daily health log covering weight, surya namaskar, water, fasting windows, and meals, with optional sync from a published Google Sheet.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "file", "", "Path to the local health log CSV")
	rootCmd.PersistentFlags().StringVar(&sheetURL, "sheet-url", "", "Published Google Sheet CSV URL")
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache", "", "Path to the sheet snapshot cache")
	rootCmd.PersistentFlags().StringVar(&sourceName, "source", "", "Data source: local or sheet")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
