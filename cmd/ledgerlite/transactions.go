package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerlite/ledgerlite/internal/model"
	"github.com/ledgerlite/ledgerlite/internal/service"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
	}

	cmd.AddCommand(transactionsAddCmd())
	cmd.AddCommand(transactionsListCmd())
	cmd.AddCommand(transactionsDeleteCmd())

	return cmd
}

func transactionsAddCmd() *cobra.Command {
	var (
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <user-id> <category-id> <amount>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(3),
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

			tx := &model.Transaction{
				UserID:      userID,
				CategoryID:  categoryID,
				Amount:      amount,
				Description: description,
			}
			if date != "" {
				tx.Date, err = parseDate(date)
				if err != nil {
					return err
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			created, err := store.CreateTransaction(ctx, tx)
			if err != nil {
				return err
			}

			fmt.Printf("Recorded transaction %d for %s on %s\n",
				created.ID, created.Amount, created.Date.Format(dateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")

	return cmd
}

func transactionsListCmd() *cobra.Command {
	var (
		from       string
		to         string
		categoryID int64
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's transactions, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			filter := service.TransactionFilter{Limit: limit}
			if from != "" {
				start, err := parseDate(from)
				if err != nil {
					return err
				}
				filter.StartDate = &start
			}
			if to != "" {
				end, err := parseEndDate(to)
				if err != nil {
					return err
				}
				filter.EndDate = &end
			}
			if categoryID > 0 {
				filter.CategoryID = &categoryID
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions, err := store.ListTransactions(ctx, userID, filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
			for _, t := range transactions {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
					t.ID, t.Date.Format(dateLayout), t.CategoryID, t.Amount, t.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "only transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "only transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "only transactions in this category")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of transactions to show")

	return cmd
}

func transactionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
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

			if err := store.DeleteTransaction(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Deleted transaction %d\n", id)
			return nil
		},
	}
}
