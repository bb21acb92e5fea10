package cli

import (
	"fmt"

	"bidding-marketplace/internal/catalog"
	"bidding-marketplace/internal/config"
	"bidding-marketplace/internal/directory"
	"bidding-marketplace/internal/ledger"
	"bidding-marketplace/internal/repository"
	"bidding-marketplace/internal/server"
	"bidding-marketplace/utils"

	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the marketplace HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides config)")
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	utils.SetLogLevel(cfg.Log.Level)

	bidStore, err := repository.OpenBidStore(cfg.Data.Dir)
	if err != nil {
		return err
	}
	collectionStore, err := repository.OpenCollectionStore(cfg.Data.Dir)
	if err != nil {
		return err
	}
	userStore, err := repository.OpenUserStore(cfg.Data.Dir)
	if err != nil {
		return err
	}

	ledgerSvc := ledger.NewService(bidStore, collectionStore, userStore)
	catalogSvc := catalog.NewService(collectionStore, bidStore)
	directorySvc := directory.NewService(userStore)

	router := server.SetupRouter(ledgerSvc, catalogSvc, directorySvc)

	utils.Info("starting marketplace server", map[string]any{
		"addr":     cfg.Server.Addr,
		"data_dir": cfg.Data.Dir,
	})
	if err := router.Run(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
