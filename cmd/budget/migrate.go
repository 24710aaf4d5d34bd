package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/monthly-budget/internal/storage"
	"github.com/spf13/cobra"
)

func migrateCmd(opts *rootOptions) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

Every other command migrates on start; this is for doing it explicitly or
checking the recorded version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dbPath := opts.cfg.DatabasePath

			store, err := storage.NewSQLiteStorage(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() { _ = store.Close() }()

			if !status {
				slog.Info("Running database migrations", "database", dbPath)
				if err := store.Migrate(ctx); err != nil {
					return fmt.Errorf("migration failed: %w", err)
				}
			}

			version, err := store.SchemaVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "database: %s\nschema version: %d (latest %d)\n",
				dbPath, version, storage.ExpectedSchemaVersion)
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "show the schema version without applying migrations")

	return cmd
}
