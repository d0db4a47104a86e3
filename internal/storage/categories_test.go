package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/common"
	"github.com/ledgerlite/ledgerlite/internal/model"
)

func countRows(t *testing.T, store *SQLiteStorage, table string) int {
	t.Helper()
	var n int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("create income and expense categories", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		user := createTestUser(t, store, "cat@example.com")

		rent, err := store.CreateCategory(ctx, user.ID, "Rent", model.CategoryTypeExpense)
		require.NoError(t, err)
		assert.Equal(t, "Rent", rent.Name)
		assert.Equal(t, model.CategoryTypeExpense, rent.Type)
		assert.Equal(t, user.ID, rent.UserID)

		salary, err := store.CreateCategory(ctx, user.ID, "Salary", model.CategoryTypeIncome)
		require.NoError(t, err)
		assert.Equal(t, model.CategoryTypeIncome, salary.Type)
	})

	t.Run("invalid type writes no row", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		user := createTestUser(t, store, "cat2@example.com")
		before := countRows(t, store, "categories")

		_, err := store.CreateCategory(ctx, user.ID, "Rent", model.CategoryType("Savings"))
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "Invalid Category Type!")

		assert.Equal(t, before, countRows(t, store, "categories"))
	})

	t.Run("unknown user", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		_, err := store.CreateCategory(ctx, 77, "Rent", model.CategoryTypeExpense)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a category without dependents", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		user := createTestUser(t, store, "del@example.com")
		cat, err := store.CreateCategory(ctx, user.ID, "Hobby", model.CategoryTypeExpense)
		require.NoError(t, err)

		require.NoError(t, store.DeleteCategory(ctx, cat.ID))

		_, err = store.GetCategoryByID(ctx, cat.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("unknown category", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		err := store.DeleteCategory(ctx, 123)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("blocked while transactions reference it", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		user := createTestUser(t, store, "del2@example.com")
		cat, err := store.CreateCategory(ctx, user.ID, "Food", model.CategoryTypeExpense)
		require.NoError(t, err)

		_, err = store.CreateTransaction(ctx, &model.Transaction{
			UserID:     user.ID,
			CategoryID: cat.ID,
			Amount:     model.Money{Cents: 500},
		})
		require.NoError(t, err)

		err = store.DeleteCategory(ctx, cat.ID)
		assert.ErrorIs(t, err, common.ErrReferentialConflict)
	})

	t.Run("blocked while budgets reference it", func(t *testing.T) {
		store, cleanup := createTestStorage(t)
		defer cleanup()

		user := createTestUser(t, store, "del3@example.com")
		cat, err := store.CreateCategory(ctx, user.ID, "Travel", model.CategoryTypeExpense)
		require.NoError(t, err)

		_, err = store.CreateBudget(ctx, &model.Budget{
			UserID:     user.ID,
			CategoryID: cat.ID,
			Amount:     model.Money{Cents: 100000},
			StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		err = store.DeleteCategory(ctx, cat.ID)
		assert.ErrorIs(t, err, common.ErrReferentialConflict)
	})
}

func TestDeleteCategoryCascade(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	user := createTestUser(t, store, "catcascade@example.com")
	cat, err := store.CreateCategory(ctx, user.ID, "Gadgets", model.CategoryTypeExpense)
	require.NoError(t, err)
	keep, err := store.CreateCategory(ctx, user.ID, "Books", model.CategoryTypeExpense)
	require.NoError(t, err)

	_, err = store.CreateTransaction(ctx, &model.Transaction{
		UserID: user.ID, CategoryID: cat.ID, Amount: model.Money{Cents: 4200},
	})
	require.NoError(t, err)
	kept, err := store.CreateTransaction(ctx, &model.Transaction{
		UserID: user.ID, CategoryID: keep.ID, Amount: model.Money{Cents: 1500},
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteCategoryCascade(ctx, cat.ID))

	_, err = store.GetCategoryByID(ctx, cat.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)

	// The other category's transaction survives.
	_, err = store.GetTransactionByID(ctx, kept.ID)
	require.NoError(t, err)
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	user := createTestUser(t, store, "list@example.com")
	other := createTestUser(t, store, "listother@example.com")

	_, err := store.CreateCategory(ctx, user.ID, "Rent", model.CategoryTypeExpense)
	require.NoError(t, err)
	_, err = store.CreateCategory(ctx, user.ID, "Salary", model.CategoryTypeIncome)
	require.NoError(t, err)
	_, err = store.CreateCategory(ctx, other.ID, "Rent", model.CategoryTypeExpense)
	require.NoError(t, err)

	cats, err := store.ListCategories(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	for _, cat := range cats {
		assert.Equal(t, user.ID, cat.UserID)
	}
}
