package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JivitSolutions/JivIT-Solutions/internal/domain/entity"
)

func promoteCmd(withRuntime runWrapper) *cobra.Command {
	var (
		userID string
		demote bool
	)

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant or revoke the admin role",
		Long: `Sets the role on an existing profile. Running servers drop their cached
role for the user as soon as the change is announced.`,
		Example: `  cmsctl promote --user 3f1c...e9
  cmsctl promote --user 3f1c...e9 --demote`,
		Args: cobra.NoArgs,
		RunE: withRuntime(func(cmd *cobra.Command, args []string, rt *Runtime) error {
			role := entity.RoleAdmin
			if demote {
				role = entity.RoleViewer
			}

			ctx := cmd.Context()
			if err := rt.Infra.Repos.Profiles.UpdateRole(ctx, userID, role); err != nil {
				return fmt.Errorf("failed to set role for %s: %w", userID, err)
			}
			rt.UseCases.Gate.NotifyRoleChanged(ctx, userID)

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", okMark, userID, boldText(string(role)))
			return nil
		}),
	}

	cmd.Flags().StringVar(&userID, "user", "", "profile id (the identity provider's user id)")
	cmd.Flags().BoolVar(&demote, "demote", false, "revoke admin instead of granting it")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
