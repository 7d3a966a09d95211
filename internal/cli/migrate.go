package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/storage"
	pgutil "github.com/NuriAnaliserDev/myCyberapp/pkg/postgres"
)

func newMigrateCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the store schema",
		Long: `Apply or roll back the schema of the store selected by STORE_DRIVER.
Postgres reads MIGRATIONS_DIR when set and the embedded migrations otherwise.`,
	}

	run := func(direction pgutil.Direction, verb string) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			if err := storage.Migrate(cmd.Context(), root.cfg, direction); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s store migrations %s\n", root.cfg.StoreDriver, verb)
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  run(pgutil.Up, "applied"),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations, dropping every table",
			Args:  cobra.NoArgs,
			RunE:  run(pgutil.Down, "rolled back"),
		},
	)
	return cmd
}
