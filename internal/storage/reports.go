package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerlite/ledgerlite/internal/common"
	"github.com/ledgerlite/ledgerlite/internal/model"
	"github.com/ledgerlite/ledgerlite/internal/service"
)

// Reporting queries. All of these are read-only aggregations over committed
// state; they take no locks beyond what the engine needs for a consistent
// snapshot.

// GetTotalExpenses sums every transaction for the user whose date falls in
// the inclusive [start, end] range, regardless of category type. It returns
// zero, never a missing value, when no rows match.
func (s *SQLiteStorage) GetTotalExpenses(ctx context.Context, userID int64, start, end time.Time) (model.Money, error) {
	if err := validateContext(ctx); err != nil {
		return model.Money{}, err
	}
	if err := validateID(userID, "userID"); err != nil {
		return model.Money{}, err
	}
	if err := validateDateRange(start, end); err != nil {
		return model.Money{}, err
	}

	var cents int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM transactions
		WHERE user_id = ? AND transaction_date >= ? AND transaction_date <= ?`,
		userID, start.UTC(), end.UTC()).Scan(&cents)
	if err != nil {
		return model.Money{}, fmt.Errorf("failed to query total expenses: %w", err)
	}

	return model.Money{Cents: cents}, nil
}

// GetExpensesByCategory sums the user's transactions joined to their
// categories, restricted to expense-type categories and grouped by category
// name. Categories without a matching transaction are omitted, and row
// order is whatever the grouping produces.
func (s *SQLiteStorage) GetExpensesByCategory(ctx context.Context, userID int64) ([]service.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, SUM(t.amount_cents) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = ? AND c.type = ?
		GROUP BY c.name`,
		userID, string(model.CategoryTypeExpense))
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses by category: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []service.CategoryTotal
	for rows.Next() {
		var name string
		var cents int64
		if err := rows.Scan(&name, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals = append(totals, service.CategoryTotal{
			Category: name,
			Total:    model.Money{Cents: cents},
		})
	}

	return totals, rows.Err()
}

// GetMonthlyExpenses sums every transaction for the user whose date falls
// in the given calendar month, matched on the date's own year and month
// components rather than a fixed-length window. Income-type transactions
// are included; the sum is not restricted by category type. Returns zero
// when no rows match.
func (s *SQLiteStorage) GetMonthlyExpenses(ctx context.Context, userID int64, year int, month time.Month) (model.Money, error) {
	if err := validateContext(ctx); err != nil {
		return model.Money{}, err
	}
	if err := validateID(userID, "userID"); err != nil {
		return model.Money{}, err
	}
	if month < time.January || month > time.December {
		return model.Money{}, fmt.Errorf("%w: month %d out of range", common.ErrInvalidArgument, month)
	}

	// Dates are stored in UTC as ISO-8601 text, so the leading seven
	// characters are exactly the year-month components.
	var cents int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM transactions
		WHERE user_id = ? AND substr(transaction_date, 1, 7) = printf('%04d-%02d', ?, ?)`,
		userID, year, int(month)).Scan(&cents)
	if err != nil {
		return model.Money{}, fmt.Errorf("failed to query monthly expenses: %w", err)
	}

	return model.Money{Cents: cents}, nil
}
