package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/model"
	"github.com/ledgerlite/ledgerlite/internal/service"
	"github.com/ledgerlite/ledgerlite/internal/testutil"
)

// seedReportData creates the canonical reporting fixture: two expense
// transactions (100.00 in Rent, 50.50 in Food) and one income transaction
// (20.00 in Salary), all in March 2025.
func seedReportData(t *testing.T) *testutil.TestDB {
	t.Helper()

	db := testutil.SetupTestDB(t,
		testutil.SeedCategory{Name: "Rent", Type: model.CategoryTypeExpense},
		testutil.SeedCategory{Name: "Food", Type: model.CategoryTypeExpense},
		testutil.SeedCategory{Name: "Salary", Type: model.CategoryTypeIncome},
	)

	ctx := context.Background()
	march := func(day int) time.Time {
		return time.Date(2025, 3, day, 10, 0, 0, 0, time.UTC)
	}

	for _, row := range []struct {
		category string
		cents    int64
		day      int
	}{
		{"Rent", 10000, 1},
		{"Food", 5050, 10},
		{"Salary", 2000, 20},
	} {
		_, err := db.Storage.CreateTransaction(ctx, &model.Transaction{
			UserID:     db.User.ID,
			CategoryID: db.MustCategory(row.category).ID,
			Amount:     model.Money{Cents: row.cents},
			Date:       march(row.day),
		})
		require.NoError(t, err)
	}

	return db
}

func TestGetTotalExpenses(t *testing.T) {
	ctx := context.Background()

	t.Run("sums all transactions in range regardless of type", func(t *testing.T) {
		db := seedReportData(t)

		total, err := db.Storage.GetTotalExpenses(ctx, db.User.ID,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, "170.50", total.String())
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		db := seedReportData(t)

		total, err := db.Storage.GetTotalExpenses(ctx, db.User.ID,
			time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, int64(15050), total.Cents)
	})

	t.Run("returns zero when nothing matches", func(t *testing.T) {
		db := seedReportData(t)

		total, err := db.Storage.GetTotalExpenses(ctx, db.User.ID,
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Cents)
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		db := seedReportData(t)

		_, err := db.Storage.GetTotalExpenses(ctx, db.User.ID,
			time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.Error(t, err)
	})
}

func TestGetExpensesByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("groups expense categories only", func(t *testing.T) {
		db := seedReportData(t)

		totals, err := db.Storage.GetExpensesByCategory(ctx, db.User.ID)
		require.NoError(t, err)

		// Row order is unspecified grouping order.
		assert.ElementsMatch(t, []service.CategoryTotal{
			{Category: "Rent", Total: model.Money{Cents: 10000}},
			{Category: "Food", Total: model.Money{Cents: 5050}},
		}, totals)
	})

	t.Run("categories with no transactions are omitted", func(t *testing.T) {
		db := testutil.SetupTestDB(t,
			testutil.SeedCategory{Name: "Unused", Type: model.CategoryTypeExpense},
		)

		totals, err := db.Storage.GetExpensesByCategory(ctx, db.User.ID)
		require.NoError(t, err)
		assert.Empty(t, totals)
	})

	t.Run("sums multiple transactions per category", func(t *testing.T) {
		db := seedReportData(t)

		_, err := db.Storage.CreateTransaction(ctx, &model.Transaction{
			UserID:     db.User.ID,
			CategoryID: db.MustCategory("Food").ID,
			Amount:     model.Money{Cents: 950},
			Date:       time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		totals, err := db.Storage.GetExpensesByCategory(ctx, db.User.ID)
		require.NoError(t, err)

		byName := make(map[string]int64, len(totals))
		for _, ct := range totals {
			byName[ct.Category] = ct.Total.Cents
		}
		assert.Equal(t, int64(6000), byName["Food"])
	})
}

func TestGetMonthlyExpenses(t *testing.T) {
	ctx := context.Background()

	t.Run("sums income and expense for the calendar month", func(t *testing.T) {
		db := seedReportData(t)

		total, err := db.Storage.GetMonthlyExpenses(ctx, db.User.ID, 2025, time.March)
		require.NoError(t, err)
		assert.Equal(t, "170.50", total.String())
	})

	t.Run("matches on date components, not a fixed window", func(t *testing.T) {
		db := seedReportData(t)

		// March 31st is still March even though it is more than 30 days
		// after the 1st.
		_, err := db.Storage.CreateTransaction(ctx, &model.Transaction{
			UserID:     db.User.ID,
			CategoryID: db.MustCategory("Rent").ID,
			Amount:     model.Money{Cents: 100},
			Date:       time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		total, err := db.Storage.GetMonthlyExpenses(ctx, db.User.ID, 2025, time.March)
		require.NoError(t, err)
		assert.Equal(t, int64(17150), total.Cents)

		april, err := db.Storage.GetMonthlyExpenses(ctx, db.User.ID, 2025, time.April)
		require.NoError(t, err)
		assert.Equal(t, int64(0), april.Cents)
	})

	t.Run("returns zero when nothing matches", func(t *testing.T) {
		db := seedReportData(t)

		total, err := db.Storage.GetMonthlyExpenses(ctx, db.User.ID, 1999, time.January)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Cents)
	})
}
