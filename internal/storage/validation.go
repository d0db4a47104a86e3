// Package storage provides the data persistence layer for the ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerlite/ledgerlite/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidID        = errors.New("id must be positive")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateID ensures an entity identifier is positive.
func validateID(id int64, paramName string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidID, paramName)
	}
	return nil
}

// validateDateRange ensures an inclusive window is ordered.
func validateDateRange(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("%w: %v after %v", ErrInvalidDateRange, start, end)
	}
	return nil
}

// validateTransaction validates a transaction before insert. Failing fast
// here keeps rejected operations from touching the database at all.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if err := validateID(txn.UserID, "userID"); err != nil {
		return err
	}
	if err := validateID(txn.CategoryID, "categoryID"); err != nil {
		return err
	}
	if err := txn.Amount.Validate(); err != nil {
		return err
	}
	return nil
}

// validateBudget validates a budget before insert.
func validateBudget(budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if err := validateID(budget.UserID, "userID"); err != nil {
		return err
	}
	if err := validateID(budget.CategoryID, "categoryID"); err != nil {
		return err
	}
	if err := budget.Amount.Validate(); err != nil {
		return err
	}
	if budget.StartDate.IsZero() || budget.EndDate.IsZero() {
		return fmt.Errorf("%w: budget dates", ErrNilParameter)
	}
	return validateDateRange(budget.StartDate, budget.EndDate)
}
