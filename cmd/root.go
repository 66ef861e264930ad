package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/openmsig/msig-client/config"
	"github.com/openmsig/msig-client/internal/server"
	"github.com/openmsig/msig-client/internal/wallet"
	"github.com/openmsig/msig-client/pkg/db"
	"github.com/openmsig/msig-client/pkg/telemetry"
)

var (
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "msig-client",
		Short: "Multisig wallet sync and action client",
		Run:   run,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) {
	// Initialize logger
	config.InitLogger()

	// Load and validate config
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	ctx := context.Background()
	shutdownTelemetry, err := telemetry.Init(ctx, config.APP_NAME, &cfg.Telemetry)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}

	// The audit store is optional; without a database the client runs
	// with the in-memory list only.
	var dbAdapter *db.DatabaseAdapter
	var recorder wallet.ActionRecorder
	var history server.ActionHistory
	if cfg.Database.URL != "" {
		dbAdapter, err = db.NewDatabaseAdapter(cfg.Database.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create database adapter")
		}
		recorder = dbAdapter
		history = dbAdapter
	}

	service, err := wallet.NewService(cfg, recorder)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create wallet service")
	}
	if err := service.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start wallet service")
	}

	httpServer := server.NewServer(service, history)
	go func() {
		if err := httpServer.Start(cfg.HTTP.ListenAddr); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the client
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down msig-client...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server")
	}
	service.Stop()
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to flush telemetry")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
}
