package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sefazor/geradores-backend/internal/config"
	"github.com/sefazor/geradores-backend/pkg/database"
	"github.com/sefazor/geradores-backend/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var envFile string

// NewRootCmd builds the CLI. Running it without a subcommand serves the API.
func NewRootCmd() *cobra.Command {
	serve := NewServeCmd()

	cmd := &cobra.Command{
		Use:          "geradores",
		Short:        "REST API for generators and their events",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	cmd.AddCommand(serve)
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}

// bootstrap loads configuration, builds the logger and opens the database.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	// a missing .env is fine, the environment still applies
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, nil, nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	if err := database.WaitForDatabase(context.Background(), db, database.DefaultConnectAttempts, log); err != nil {
		shutdown(log, db)
		return nil, nil, nil, err
	}

	return cfg, log, db, nil
}

func shutdown(log *zap.Logger, db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.Warn("failed to close database", zap.Error(err))
	}
	_ = log.Sync()
}
