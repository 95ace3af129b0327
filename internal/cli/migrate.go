package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JivitSolutions/JivIT-Solutions/internal/infrastructure/database"
)

func migrateCmd(withRuntime runWrapper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the CMS tables",
		Args:  cobra.NoArgs,
		RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *Runtime) error {
			if err := database.Migrate(rt.Infra.DB, rt.Logger); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s migrations applied\n", okMark)
			return nil
		}),
	}
}
