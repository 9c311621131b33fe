package users

import (
	"fmt"
	"net/url"

	"github.com/crucial707/postboard/cmd/cli/output"
	"github.com/crucial707/postboard/cmd/cli/root"
	"github.com/crucial707/postboard/internal/forms"
	"github.com/crucial707/postboard/internal/repo"
	"github.com/spf13/cobra"
)

// ==========================
// Init Users
// ==========================
func InitUsers(rootCmd *cobra.Command) {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	usersCmd.AddCommand(
		listUsersCmd(),
		createUserCmd(),
	)

	rootCmd.AddCommand(usersCmd)
}

// ==========================
// LIST
// ==========================
func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := root.OpenDB(cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			users, err := repo.NewUserRepo(pool).List(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]any, 0, len(users))
			for _, u := range users {
				rows = append(rows, []any{u.ID, u.Username, u.Email})
			}
			output.Listing{Headers: []string{"ID", "Username", "Email"}, Rows: rows, Noun: "user"}.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

// ==========================
// CREATE
// ==========================
func createUserCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, errs := forms.ParseNewUser(url.Values{
				"username": {username},
				"email":    {email},
				"password": {password},
			})
			if errs != nil {
				return errs
			}

			pool, err := root.OpenDB(cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			user, err := repo.NewUserRepo(pool).Create(cmd.Context(), input.Username, input.Email, input.Password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %d (%s)\n", user.ID, user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}
