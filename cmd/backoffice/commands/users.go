package commands

import (
	"github.com/spf13/cobra"
)

// NewUsersCommand creates the users command with subcommands
func NewUsersCommand() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Browse registered customers",
	}

	usersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			app.render.UsersTable(app.users.ListUsers(cmd.Context()))
			return nil
		},
	})

	usersCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one customer account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.close()

			user, err := app.users.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			app.render.UserDetail(user)
			return nil
		},
	})

	return usersCmd
}
