package migrate

import (
	"fmt"

	"github.com/crucial707/postboard/cmd/cli/root"
	"github.com/crucial707/postboard/internal/db"
	"github.com/spf13/cobra"
)

func InitMigrate(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := root.DatabaseURL()
			if err != nil {
				return err
			}
			version, err := db.Migrate(dsn)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (version %d).\n", version)
			return nil
		},
	})
}
