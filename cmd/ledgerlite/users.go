package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage ledger users",
	}

	cmd.AddCommand(usersAddCmd())
	cmd.AddCommand(usersListCmd())
	cmd.AddCommand(usersUpdateCmd())
	cmd.AddCommand(usersDeleteCmd())

	return cmd
}

func usersAddCmd() *cobra.Command {
	var designation string

	cmd := &cobra.Command{
		Use:   "add <name> <email> <password-hash>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := store.CreateUser(ctx, args[0], args[1], args[2], designation)
			if err != nil {
				return err
			}

			fmt.Printf("Created user %d (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&designation, "designation", "", "role or title for the user")

	return cmd
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			users, err := store.ListUsers(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tDESIGNATION\tCREATED")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					u.ID, u.Name, u.Email, u.Designation, u.CreatedAt.Format(dateLayout))
			}
			return w.Flush()
		},
	}
}

func usersUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <name> <email>",
		Short: "Update a user's name and email",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.UpdateUser(ctx, id, args[1], args[2]); err != nil {
				return err
			}

			fmt.Printf("Updated user %d (%s)\n", id, args[2])
			return nil
		},
	}
}

func usersDeleteCmd() *cobra.Command {
	var cascade bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Long: `Delete a user. By default the delete fails if the user still owns
categories, transactions, or budgets; pass --cascade to remove those too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if cascade {
				err = store.DeleteUserCascade(ctx, id)
			} else {
				err = store.DeleteUser(ctx, id)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Deleted user %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cascade, "cascade", false, "also delete the user's categories, transactions, and budgets")

	return cmd
}
