package myhealth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ranjidha/myHealth/internal/app"
	"github.com/ranjidha/myHealth/internal/server"
	"github.com/ranjidha/myHealth/internal/store"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the health log over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		var srv *server.Server
		if cfg.Source == "sheet" {
			src, cleanup, err := newSheetSource(cfg)
			if err != nil {
				return err
			}
			defer cleanup()
			srv = server.New(src, nil, logger)
		} else {
			if err := app.EnsureDataDir(cfg.DataFile); err != nil {
				return err
			}
			st := store.Store{Path: cfg.DataFile}
			srv = server.New(server.StoreSource{Store: st}, &st, logger)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Serving %s source on %s\n", cfg.Source, cfg.Addr)
		return srv.Router().Run(cfg.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
}
