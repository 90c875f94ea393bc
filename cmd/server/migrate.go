package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sebasr/hello-service/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Applies or reverts the schema migrations embedded in the binary.

Running "migrate" without a subcommand is the same as "migrate up".`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return applyMigrations(cfg.Database.ConnectionString(), logger)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert every applied migration",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return withMigrator(cfg.Database.ConnectionString(), func(m *database.Migrator) error {
			if err := m.Down(); err != nil {
				return err
			}
			logger.Info("database migrations reverted")
			return nil
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return withMigrator(cfg.Database.ConnectionString(), func(m *database.Migrator) error {
			version, dirty, applied, err := m.Version()
			if err != nil {
				return err
			}
			if !applied {
				cmd.Println("no migrations applied")
				return nil
			}
			cmd.Printf("version %d (dirty: %t)\n", version, dirty)
			return nil
		})
	},
}

// applyMigrations brings the schema up to date
func applyMigrations(databaseURL string, logger *zap.Logger) error {
	return withMigrator(databaseURL, func(m *database.Migrator) error {
		if err := m.Up(); err != nil {
			return err
		}

		version, dirty, _, err := m.Version()
		if err != nil {
			return err
		}
		logger.Info("database migrations applied",
			zap.Uint("version", version),
			zap.Bool("dirty", dirty),
		)
		return nil
	})
}

func withMigrator(databaseURL string, fn func(*database.Migrator) error) (err error) {
	m, err := database.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close migrator: %w", closeErr)
		}
	}()

	return fn(m)
}
