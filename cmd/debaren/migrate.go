package main

import (
	"debaren/internal/lib/logger/sl"
	"debaren/internal/storage/postgres"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var listMigrations bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if listMigrations {
			names, err := postgres.MigrationNames()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := setupLogger(cfg.Env)

		storage, err := postgres.InitDB(cmd.Context(), &cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			return err
		}
		defer storage.Close()

		if err = storage.Migrate(cmd.Context()); err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			return err
		}

		log.Info("migrations applied", slog.String("database", cfg.Database.DBName))

		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&listMigrations, "list", false, "print the embedded migrations and exit")
}
