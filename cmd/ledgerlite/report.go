package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending reports",
	}

	cmd.AddCommand(reportTotalCmd())
	cmd.AddCommand(reportByCategoryCmd())
	cmd.AddCommand(reportMonthlyCmd())

	return cmd
}

func reportTotalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "total <user-id> <start-date> <end-date>",
		Short: "Total of all transactions in a date range, bounds inclusive",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			start, err := parseDate(args[1])
			if err != nil {
				return err
			}
			end, err := parseEndDate(args[2])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			total, err := store.GetTotalExpenses(ctx, userID, start, end)
			if err != nil {
				return err
			}

			fmt.Printf("Total from %s to %s: %s\n",
				start.Format(dateLayout), end.Format(dateLayout), total)
			return nil
		},
	}
}

func reportByCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-category <user-id>",
		Short: "Expense totals grouped by category name",
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

			totals, err := store.GetExpensesByCategory(ctx, userID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tTOTAL")
			for _, row := range totals {
				fmt.Fprintf(w, "%s\t%s\n", row.Category, row.Total)
			}
			return w.Flush()
		},
	}
}

func reportMonthlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly <user-id> <year> <month>",
		Short: "Total of all transactions in a calendar month",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			var year, month int
			if _, err := fmt.Sscanf(args[1], "%d", &year); err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}
			if _, err := fmt.Sscanf(args[2], "%d", &month); err != nil {
				return fmt.Errorf("invalid month %q", args[2])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			total, err := store.GetMonthlyExpenses(ctx, userID, year, time.Month(month))
			if err != nil {
				return err
			}

			fmt.Printf("Total for %04d-%02d: %s\n", year, month, total)
			return nil
		},
	}
}
