package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledgerlite/ledgerlite/internal/common"
	"github.com/ledgerlite/ledgerlite/internal/model"
	"github.com/ledgerlite/ledgerlite/internal/service"
)

// CreateTransaction records a monetary event. The referenced category must
// exist and belong to the same user as the transaction; the check and the
// insert run inside a single database transaction so no partial state is
// ever visible. A zero Date defaults to the moment of insertion.
func (s *SQLiteStorage) CreateTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransaction(txn); err != nil {
		return nil, err
	}

	date := txn.Date
	if date.IsZero() {
		date = time.Now()
	}
	date = date.UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var categoryOwner int64
	err = tx.QueryRowContext(ctx, `SELECT user_id FROM categories WHERE id = ?`, txn.CategoryID).Scan(&categoryOwner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: category %d", common.ErrNotFound, txn.CategoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	if categoryOwner != txn.UserID {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, txn.UserID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, txn.UserID)
		}
		return nil, fmt.Errorf("%w: category %d does not belong to user %d", common.ErrInvalidArgument, txn.CategoryID, txn.UserID)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (user_id, category_id, amount_cents, description, transaction_date)
		VALUES (?, ?, ?, ?, ?)`,
		txn.UserID, txn.CategoryID, txn.Amount.Cents, txn.Description, date)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, txn.UserID)
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	created := *txn
	created.ID = id
	created.Date = date

	slog.Debug("created transaction",
		"id", id,
		"user_id", txn.UserID,
		"category_id", txn.CategoryID,
		"amount", txn.Amount)
	return &created, nil
}

// GetTransactionByID returns the transaction with the given ID.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	var txn model.Transaction
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, category_id, amount_cents, description, transaction_date
		FROM transactions
		WHERE id = ?`, id).
		Scan(&txn.ID, &txn.UserID, &txn.CategoryID, &txn.Amount.Cents, &txn.Description, &txn.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction %d", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	return &txn, nil
}

// ListTransactions returns a user's transactions, newest first, narrowed by
// the optional filter fields.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, userID int64, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(userID, "userID"); err != nil {
		return nil, err
	}

	var conditions []string
	args := []any{userID}
	conditions = append(conditions, "user_id = ?")

	if filter.StartDate != nil {
		conditions = append(conditions, "transaction_date >= ?")
		args = append(args, filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "transaction_date <= ?")
		args = append(args, filter.EndDate.UTC())
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	query := `
		SELECT id, user_id, category_id, amount_cents, description, transaction_date
		FROM transactions
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY transaction_date DESC, id DESC`
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		if err := rows.Scan(&txn.ID, &txn.UserID, &txn.CategoryID, &txn.Amount.Cents, &txn.Description, &txn.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// DeleteTransaction removes a transaction. Nothing references transactions,
// so the delete is unconditional once the row exists.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %d", common.ErrNotFound, id)
	}

	slog.Debug("deleted transaction", "id", id)
	return nil
}
