package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password-hash>",
		Short: "Check a user's credentials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := store.ValidateUserLogin(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("Welcome, %s (user %d)\n", user.Name, user.ID)
			return nil
		},
	}
}
