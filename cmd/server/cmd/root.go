package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"linkboard/internal/app/server"
	"linkboard/internal/app/server/api"
	"linkboard/internal/config"
	"linkboard/internal/infrastructure/storage/mongodb"
	"linkboard/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "linkboard",
	Short: "Linkboard — CRUD service for link records backed by MongoDB",
	Long: `Linkboard stores link records (title, description, url, like counter)
in MongoDB and serves CRUD, title search, like increment and a
user-registration endpoint over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := mongodb.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := storage.Close(closeCtx); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	mux := api.New(cfg, storage, log)
	srv := server.New(cfg, mux, log)

	log.Info("linkboard starting",
		"env", cfg.Env,
		"address", cfg.Server.RunAddress,
		"database", cfg.DB.Database,
	)

	return srv.Run(ctx)
}
