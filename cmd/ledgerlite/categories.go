package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerlite/ledgerlite/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Manage income and expense categories",
	}

	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesDeleteCmd())

	return cmd
}

func categoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <user-id> <name> <type>",
		Short: "Create a category (type is Income or Expense)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			categoryType, err := model.ParseCategoryType(args[2])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := store.CreateCategory(ctx, userID, args[1], categoryType)
			if err != nil {
				return err
			}

			fmt.Printf("Created category %d (%s, %s)\n", category.ID, category.Name, category.Type)
			return nil
		},
	}
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.ListCategories(ctx, userID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE")
			for _, c := range categories {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Type)
			}
			return w.Flush()
		},
	}
}

func categoriesDeleteCmd() *cobra.Command {
	var cascade bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. By default the delete fails if transactions or
budgets still reference it; pass --cascade to remove those too.`,
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
				err = store.DeleteCategoryCascade(ctx, id)
			} else {
				err = store.DeleteCategory(ctx, id)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Deleted category %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cascade, "cascade", false, "also delete transactions and budgets referencing the category")

	return cmd
}
