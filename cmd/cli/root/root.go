package root

import (
	"context"
	"database/sql"

	"github.com/crucial707/postboard/internal/config"
	"github.com/crucial707/postboard/internal/db"
	"github.com/spf13/cobra"
)

var databaseURL string

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:           "postboardctl",
	Short:         "postboard admin CLI",
	Long:          "Command line interface for managing postboard users and posts directly in the database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "",
		"PostgreSQL connection string (defaults to DATABASE_URL)")
}

// Open connects to the store. Tests replace it with a sqlmock-backed pool.
var Open = func(ctx context.Context, dsn string) (*sql.DB, error) {
	return db.Connect(ctx, dsn, 2, 1)
}

// DatabaseURL returns the --database-url flag, falling back to the environment.
func DatabaseURL() (string, error) {
	if databaseURL != "" {
		return databaseURL, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.DatabaseURL, nil
}

// OpenDB opens the store for a subcommand. The caller must Close the pool.
func OpenDB(cmd *cobra.Command) (*sql.DB, error) {
	dsn, err := DatabaseURL()
	if err != nil {
		return nil, err
	}
	return Open(cmd.Context(), dsn)
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
