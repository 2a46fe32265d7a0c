package main

import (
	"github.com/sefazor/geradores-backend/pkg/database"
	"github.com/sefazor/geradores-backend/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type seedConfig struct {
	generators int
	events     int
	seed       int64
}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample generators and events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer shutdown(log, db)

			if err := database.RunMigrations(db); err != nil {
				return err
			}

			result, err := database.Seed(db, cfg.generators, cfg.events, utils.NewRand(cfg.seed))
			if err != nil {
				return err
			}
			log.Info("database seeded",
				zap.Int("geradores", result.Generators),
				zap.Int("eventos", result.Events),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.generators, "generators", 15, "number of generators to create")
	cmd.Flags().IntVar(&cfg.events, "events", 50, "number of events to create")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 0, "random seed (0 = time based)")

	return cmd
}
