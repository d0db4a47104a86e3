package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerlite/ledgerlite/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage per-category budgets",
	}

	cmd.AddCommand(budgetsAddCmd())
	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsDeleteCmd())

	return cmd
}

func budgetsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <user-id> <category-id> <amount> <start-date> <end-date>",
		Short: "Set a budget for a category over a date window",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			categoryID, err := parseID(args[1])
			if err != nil {
				return err
			}
			amount, err := model.ParseMoney(args[2])
			if err != nil {
				return err
			}
			start, err := parseDate(args[3])
			if err != nil {
				return err
			}
			end, err := parseDate(args[4])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budget, err := store.CreateBudget(ctx, &model.Budget{
				UserID:     userID,
				CategoryID: categoryID,
				Amount:     amount,
				StartDate:  start,
				EndDate:    end,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created budget %d of %s from %s to %s\n",
				budget.ID, budget.Amount,
				budget.StartDate.Format(dateLayout), budget.EndDate.Format(dateLayout))
			return nil
		},
	}
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's budgets",
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

			budgets, err := store.ListBudgets(ctx, userID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tAMOUNT\tSTART\tEND")
			for _, b := range budgets {
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
					b.ID, b.CategoryID, b.Amount,
					b.StartDate.Format(dateLayout), b.EndDate.Format(dateLayout))
			}
			return w.Flush()
		},
	}
}

func budgetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
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

			if err := store.DeleteBudget(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Deleted budget %d\n", id)
			return nil
		},
	}
}
