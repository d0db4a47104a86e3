package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ledgerlite/ledgerlite/internal/common"
	"github.com/ledgerlite/ledgerlite/internal/model"
)

// importCmd loads transactions from a CSV file with columns
// date,category_id,amount,description. The date may be empty, in which
// case the transaction is dated today.
func importCmd() *cobra.Command {
	var skipHeader bool

	cmd := &cobra.Command{
		Use:   "import <user-id> <file.csv>",
		Short: "Import transactions from a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			userID, err := parseID(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[1], err)
			}
			defer f.Close()

			records, err := readImportFile(f, skipHeader)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("Nothing to import")
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			bar := progressbar.NewOptions(len(records),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing transactions..."),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			imported := 0
			for i, record := range records {
				tx := &model.Transaction{
					UserID:      userID,
					CategoryID:  record.categoryID,
					Amount:      record.amount,
					Date:        record.date,
					Description: record.description,
				}

				err := common.WithRetry(ctx, func() error {
					_, createErr := store.CreateTransaction(ctx, tx)
					if isPermanent(createErr) {
						return &common.RetryableError{Err: createErr, Retryable: false}
					}
					return createErr
				}, common.RetryOptions{MaxAttempts: 3})
				if err != nil {
					common.LogError(err, "Import aborted", common.Fields{
						"file": args[1],
						"row":  record.line,
					})
					return common.NewUserError(
						fmt.Sprintf("row %d of %s could not be imported", record.line, args[1]), err)
				}

				imported++
				if err := bar.Set(i + 1); err != nil {
					slog.Debug("Failed to update progress bar", "error", err)
				}
			}

			common.LogInfo("Import finished", common.Fields{
				"file":     args[1],
				"imported": imported,
			})
			fmt.Printf("Imported %d transactions\n", imported)
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipHeader, "skip-header", true, "treat the first row as a header")

	return cmd
}

// isPermanent reports whether a storage error will fail the same way on
// every attempt, so the importer should not burn retries on it.
func isPermanent(err error) bool {
	return errors.Is(err, common.ErrInvalidArgument) ||
		errors.Is(err, common.ErrNotFound) ||
		errors.Is(err, common.ErrDuplicateKey)
}

type importRecord struct {
	date        time.Time
	amount      model.Money
	description string
	categoryID  int64
	line        int
}

func readImportFile(r io.Reader, skipHeader bool) ([]importRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	var records []importRecord
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}

		line++
		if line == 1 && skipHeader {
			continue
		}

		record := importRecord{line: line, description: row[3]}

		record.categoryID, err = strconv.ParseInt(row[1], 10, 64)
		if err != nil || record.categoryID <= 0 {
			return nil, fmt.Errorf("row %d: invalid category id %q", line, row[1])
		}

		record.amount, err = model.ParseMoney(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		if row[0] != "" {
			date, err := parseDate(row[0])
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", line, err)
			}
			record.date = date
		}

		records = append(records, record)
	}

	return records, nil
}
