package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ledgerlite/ledgerlite/internal/common"
	"github.com/ledgerlite/ledgerlite/internal/model"
)

// CreateBudget plans an amount for a (user, category) pair over an
// inclusive date window. Budgets for the same category and overlapping
// windows may coexist; reporting does not cross-reference budgets against
// actuals, so no overlap check is performed. The ownership check and the
// insert run inside one database transaction.
func (s *SQLiteStorage) CreateBudget(ctx context.Context, budget *model.Budget) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var categoryOwner int64
	err = tx.QueryRowContext(ctx, `SELECT user_id FROM categories WHERE id = ?`, budget.CategoryID).Scan(&categoryOwner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: category %d", common.ErrNotFound, budget.CategoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	if categoryOwner != budget.UserID {
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, budget.UserID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, budget.UserID)
		}
		return nil, fmt.Errorf("%w: category %d does not belong to user %d", common.ErrInvalidArgument, budget.CategoryID, budget.UserID)
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO budgets (user_id, category_id, amount_cents, start_date, end_date)
		VALUES (?, ?, ?, ?, ?)`,
		budget.UserID, budget.CategoryID, budget.Amount.Cents,
		budget.StartDate.UTC(), budget.EndDate.UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: user %d", common.ErrNotFound, budget.UserID)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get budget ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit budget: %w", err)
	}

	created := *budget
	created.ID = id
	created.StartDate = budget.StartDate.UTC()
	created.EndDate = budget.EndDate.UTC()

	slog.Info("created budget",
		"id", id,
		"user_id", budget.UserID,
		"category_id", budget.CategoryID,
		"amount", budget.Amount)
	return &created, nil
}

// ListBudgets returns all budgets for a user ordered by start date.
func (s *SQLiteStorage) ListBudgets(ctx context.Context, userID int64) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, category_id, amount_cents, start_date, end_date
		FROM budgets
		WHERE user_id = ?
		ORDER BY start_date, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount.Cents, &b.StartDate, &b.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}

// DeleteBudget removes a budget. There is no update operation; replacing a
// budget is delete plus create.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: budget %d", common.ErrNotFound, id)
	}

	slog.Info("deleted budget", "id", id)
	return nil
}
