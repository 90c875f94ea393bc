// Package main is the entry point for the hello service HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sebasr/hello-service/internal/config"
	"github.com/sebasr/hello-service/internal/logging"
)

var envDir string

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Greeting REST service backed by PostgreSQL",
	Long: `Runs the hello service HTTP API.

Configuration comes from environment variables, optionally seeded from
.env.local and .env files. Run without a subcommand to serve.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "Directory searched for .env.local and .env files")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
	// "migrate" alone applies pending migrations
	migrateCmd.RunE = migrateUpCmd.RunE

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads .env files and configuration and builds the logger
func bootstrap() (*config.Config, *zap.Logger, error) {
	loaded, err := config.LoadDotEnv(envDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load .env files: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if len(loaded) > 0 {
		logger.Info("loaded environment files", zap.Strings("files", loaded))
	}

	return cfg, logger, nil
}
