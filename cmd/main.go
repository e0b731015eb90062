package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samandr77/microservices/billing/pkg/config"
	"github.com/samandr77/microservices/billing/pkg/logger"
)

var (
	envPath string
	cfg     config.Config
)

func main() {
	err := rootCmd().ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "billing",
		Short:         "Utility billing core: properties, service accounts, bills and payments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			cfg, err = config.New(envPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			ctx := logger.WithOperation(logger.WithNewRequestID(cmd.Context()), cmd.Name())
			cmd.SetContext(ctx)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&envPath, "env", ".env", "path to an optional .env file")

	root.AddCommand(serveCmd(), migrateCmd(), reportCmd(), payCmd())

	return root
}
