package main

import (
	"github.com/sefazor/geradores-backend/pkg/database"
	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer shutdown(log, db)

			if err := database.RunMigrations(db); err != nil {
				return err
			}
			log.Info("migrations applied")
			return nil
		},
	}
}
