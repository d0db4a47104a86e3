// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/ledgerlite/ledgerlite/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	Limit      int
}

// CategoryTotal is one row of a per-category aggregation.
type CategoryTotal struct {
	Category string
	Total    model.Money
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, name, email, passwordHash, designation string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, name, email string) error
	DeleteUser(ctx context.Context, id int64) error
	DeleteUserCascade(ctx context.Context, id int64) error

	// Category operations
	CreateCategory(ctx context.Context, userID int64, name string, categoryType model.CategoryType) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	DeleteCategoryCascade(ctx context.Context, id int64) error

	// Transaction operations
	CreateTransaction(ctx context.Context, txn *model.Transaction) (*model.Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, filter TransactionFilter) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	// Budget operations
	CreateBudget(ctx context.Context, budget *model.Budget) (*model.Budget, error)
	ListBudgets(ctx context.Context, userID int64) ([]model.Budget, error)
	DeleteBudget(ctx context.Context, id int64) error

	// Reporting (read-only)
	GetTotalExpenses(ctx context.Context, userID int64, start, end time.Time) (model.Money, error)
	GetExpensesByCategory(ctx context.Context, userID int64) ([]CategoryTotal, error)
	GetMonthlyExpenses(ctx context.Context, userID int64, year int, month time.Month) (model.Money, error)

	// Authentication
	ValidateUserLogin(ctx context.Context, email, passwordHash string) (*model.User, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
