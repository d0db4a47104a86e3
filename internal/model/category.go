package model

import (
	"fmt"

	"github.com/ledgerlite/ledgerlite/internal/common"
)

// CategoryType indicates whether a category collects income or expenses.
// It is a closed enumeration: no other value is ever persisted.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for incoming money.
	CategoryTypeIncome CategoryType = "Income"
	// CategoryTypeExpense represents categories for outgoing money.
	CategoryTypeExpense CategoryType = "Expense"
)

// ErrInvalidCategoryType is returned when a category type is neither
// "Income" nor "Expense". The message is caller-facing and stable.
var ErrInvalidCategoryType = fmt.Errorf("%w: Invalid Category Type!", common.ErrInvalidArgument)

// ParseCategoryType converts a raw string into a CategoryType. The match is
// exact and case-sensitive.
func ParseCategoryType(s string) (CategoryType, error) {
	switch CategoryType(s) {
	case CategoryTypeIncome:
		return CategoryTypeIncome, nil
	case CategoryTypeExpense:
		return CategoryTypeExpense, nil
	default:
		return "", ErrInvalidCategoryType
	}
}

// Valid reports whether the type is one of the two enumerated values.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category represents a named income or expense bucket owned by one user.
type Category struct {
	Name   string
	Type   CategoryType
	ID     int64
	UserID int64
}
