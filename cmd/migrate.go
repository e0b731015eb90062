package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/billing/pkg/postgres"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Postgres.DSN == "" {
				return errors.New("POSTGRES_DSN is not set")
			}

			version, err := postgres.UpMigrations(cmd.Context(), cfg.Postgres.DSN)
			if err != nil {
				return fmt.Errorf("up migrations: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)

			return nil
		},
	}
}
