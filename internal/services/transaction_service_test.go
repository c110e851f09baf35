package services_test

import (
	"fmt"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
	"fintrack/internal/testutil"
)

func TestTransactionService_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	categoryService := services.NewCategoryService(db)
	service := services.NewTransactionService(db, categoryService)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

	t.Run("creates transaction with resolved category name", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 42.75, "USD", category.ID, "2025-06-15", "lunch")
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Error("expected generated ID")
		}
		if tx.CategoryName != category.Name {
			t.Errorf("expected category name %q, got %q", category.Name, tx.CategoryName)
		}
		if tx.Deleted {
			t.Error("new transaction should not be deleted")
		}
		if !tx.CreatedAt.Equal(tx.UpdatedAt) {
			t.Errorf("expected created_at == updated_at on insert, got %v and %v", tx.CreatedAt, tx.UpdatedAt)
		}
	})

	t.Run("allows zero amount", func(t *testing.T) {
		_, err := service.Create(user.ID, models.TransactionTypeExpense, 0, "USD", category.ID, "2025-06-16", "")
		testutil.AssertNoError(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := service.Create(user.ID, models.TransactionTypeExpense, -1, "USD", category.ID, "2025-06-15", "")
		testutil.AssertAppError(t, err, "NEGATIVE_AMOUNT")
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		_, err := service.Create(user.ID, models.TransactionType("transfer"), 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "15/06/2025", "")
		testutil.AssertAppError(t, err, "INVALID_DATE")
	})

	t.Run("rejects impossible calendar date", func(t *testing.T) {
		_, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-02-30", "")
		testutil.AssertAppError(t, err, "INVALID_DATE")
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", "missing", "2025-06-15", "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("rejects another user's category", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		otherCategory := testutil.CreateTestCategory(t, db, other.ID, models.CategoryTypeExpense)

		_, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", otherCategory.ID, "2025-06-15", "")
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestTransactionService_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	categoryService := services.NewCategoryService(db)
	service := services.NewTransactionService(db, categoryService)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

	first, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-05-10", "")
	testutil.AssertNoError(t, err)
	second, err := service.Create(user.ID, models.TransactionTypeExpense, 20, "USD", category.ID, "2025-06-01", "")
	testutil.AssertNoError(t, err)
	third, err := service.Create(user.ID, models.TransactionTypeExpense, 30, "USD", category.ID, "2025-06-01", "")
	testutil.AssertNoError(t, err)

	t.Run("orders by date descending with newest insert first on ties", func(t *testing.T) {
		transactions, err := service.List(user.ID, services.TransactionFilter{})
		testutil.AssertNoError(t, err)

		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(transactions))
		}
		// Both June rows share a date; the later insert has the larger
		// time-ordered UUID and sorts first.
		if transactions[0].ID != third.ID || transactions[1].ID != second.ID || transactions[2].ID != first.ID {
			t.Errorf("unexpected order: %s, %s, %s", transactions[0].ID, transactions[1].ID, transactions[2].ID)
		}
	})

	t.Run("filters by month prefix", func(t *testing.T) {
		month := "2025-05"
		transactions, err := service.List(user.ID, services.TransactionFilter{Month: &month})
		testutil.AssertNoError(t, err)

		if len(transactions) != 1 {
			t.Fatalf("expected 1 transaction for 2025-05, got %d", len(transactions))
		}
		if transactions[0].ID != first.ID {
			t.Errorf("expected transaction %s, got %s", first.ID, transactions[0].ID)
		}
	})

	t.Run("month filter matches whole month key only", func(t *testing.T) {
		month := "2025-0"
		transactions, err := service.List(user.ID, services.TransactionFilter{Month: &month})
		testutil.AssertNoError(t, err)

		// A partial prefix still matches via LIKE; handlers validate the
		// YYYY-MM shape before it reaches the service.
		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions for prefix, got %d", len(transactions))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		incomeCategory := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeIncome)
		_, err := service.Create(user.ID, models.TransactionTypeIncome, 100, "USD", incomeCategory.ID, "2025-06-02", "")
		testutil.AssertNoError(t, err)

		income := models.TransactionTypeIncome
		transactions, err := service.List(user.ID, services.TransactionFilter{Type: &income})
		testutil.AssertNoError(t, err)

		if len(transactions) != 1 {
			t.Fatalf("expected 1 income transaction, got %d", len(transactions))
		}
		if transactions[0].Type != models.TransactionTypeIncome {
			t.Errorf("expected income, got %s", transactions[0].Type)
		}
	})

	t.Run("scopes to the requesting user", func(t *testing.T) {
		other := testutil.CreateTestUser(t, db)
		transactions, err := service.List(other.ID, services.TransactionFilter{})
		testutil.AssertNoError(t, err)

		if len(transactions) != 0 {
			t.Errorf("expected no transactions for other user, got %d", len(transactions))
		}
	})
}

func TestTransactionService_ListPage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	categoryService := services.NewCategoryService(db)
	service := services.NewTransactionService(db, categoryService)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

	for day := 1; day <= 5; day++ {
		testutil.CreateTestTransaction(t, db, user.ID, category, models.TransactionTypeExpense, float64(day), fmt.Sprintf("2025-06-%02d", day))
	}

	t.Run("returns requested page with totals", func(t *testing.T) {
		page, err := service.ListPage(user.ID, pagination.PageRequest{Page: 2, PageSize: 2}, services.TransactionFilter{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 5 {
			t.Errorf("expected 5 total items, got %d", page.TotalItems)
		}
		if page.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", page.TotalPages)
		}
		if len(page.Data) != 2 {
			t.Fatalf("expected 2 items on page 2, got %d", len(page.Data))
		}
		// Page 1 holds days 5 and 4; page 2 starts at day 3.
		if page.Data[0].Date != "2025-06-03" {
			t.Errorf("expected page 2 to start at 2025-06-03, got %s", page.Data[0].Date)
		}
	})

	t.Run("applies defaults for a zero request", func(t *testing.T) {
		page, err := service.ListPage(user.ID, pagination.PageRequest{}, services.TransactionFilter{})
		testutil.AssertNoError(t, err)

		if page.Page != 1 {
			t.Errorf("expected page 1, got %d", page.Page)
		}
		if len(page.Data) != 5 {
			t.Errorf("expected all 5 items on default page size, got %d", len(page.Data))
		}
	})
}

func TestTransactionService_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	categoryService := services.NewCategoryService(db)
	service := services.NewTransactionService(db, categoryService)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

	t.Run("updates provided fields and leaves the rest", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "before")
		testutil.AssertNoError(t, err)

		amount := 25.5
		notes := "after"
		updated, err := service.Update(user.ID, tx.ID, services.TransactionUpdate{Amount: &amount, Notes: &notes})
		testutil.AssertNoError(t, err)

		if updated.Amount != 25.5 {
			t.Errorf("expected amount 25.5, got %v", updated.Amount)
		}
		if updated.Notes != "after" {
			t.Errorf("expected notes %q, got %q", "after", updated.Notes)
		}
		if updated.Date != "2025-06-15" {
			t.Errorf("date should be unchanged, got %s", updated.Date)
		}
		if updated.CategoryID != category.ID {
			t.Errorf("category should be unchanged, got %s", updated.CategoryID)
		}
	})

	t.Run("re-resolves category name on category change", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		replacement := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		updated, err := service.Update(user.ID, tx.ID, services.TransactionUpdate{CategoryID: &replacement.ID})
		testutil.AssertNoError(t, err)

		if updated.CategoryID != replacement.ID {
			t.Errorf("expected category %s, got %s", replacement.ID, updated.CategoryID)
		}
		if updated.CategoryName != replacement.Name {
			t.Errorf("expected category name %q, got %q", replacement.Name, updated.CategoryName)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		amount := -5.0
		_, err = service.Update(user.ID, tx.ID, services.TransactionUpdate{Amount: &amount})
		testutil.AssertAppError(t, err, "NEGATIVE_AMOUNT")
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		date := "June 15"
		_, err = service.Update(user.ID, tx.ID, services.TransactionUpdate{Date: &date})
		testutil.AssertAppError(t, err, "INVALID_DATE")
	})

	t.Run("fails on missing id", func(t *testing.T) {
		amount := 5.0
		_, err := service.Update(user.ID, "missing", services.TransactionUpdate{Amount: &amount})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("fails on another user's transaction", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		other := testutil.CreateTestUser(t, db)
		amount := 5.0
		_, err = service.Update(other.ID, tx.ID, services.TransactionUpdate{Amount: &amount})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionService_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	categoryService := services.NewCategoryService(db)
	service := services.NewTransactionService(db, categoryService)

	user := testutil.CreateTestUser(t, db)
	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

	t.Run("removes transaction from listings", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, service.Delete(user.ID, tx.ID))

		transactions, err := service.List(user.ID, services.TransactionFilter{})
		testutil.AssertNoError(t, err)
		for _, got := range transactions {
			if got.ID == tx.ID {
				t.Error("deleted transaction still listed")
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, service.Delete(user.ID, tx.ID))
		testutil.AssertNoError(t, service.Delete(user.ID, tx.ID))
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		testutil.AssertNoError(t, service.Delete(user.ID, "missing"))
	})

	t.Run("another user's transaction is untouched", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		other := testutil.CreateTestUser(t, db)
		testutil.AssertNoError(t, service.Delete(other.ID, tx.ID))

		var stored models.Transaction
		testutil.AssertNoError(t, db.First(&stored, "id = ?", tx.ID).Error)
		if stored.Deleted {
			t.Error("transaction was deleted by a different user")
		}
	})

	t.Run("deleted transaction remains updatable", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, service.Delete(user.ID, tx.ID))

		notes := "late edit"
		updated, err := service.Update(user.ID, tx.ID, services.TransactionUpdate{Notes: &notes})
		testutil.AssertNoError(t, err)

		if updated.Notes != "late edit" {
			t.Errorf("expected notes updated on deleted row, got %q", updated.Notes)
		}

		// The edit must not resurrect the row.
		var stored models.Transaction
		testutil.AssertNoError(t, db.First(&stored, "id = ?", tx.ID).Error)
		if !stored.Deleted {
			t.Error("update cleared the deletion flag")
		}
	})

	t.Run("does not touch updated_at", func(t *testing.T) {
		tx, err := service.Create(user.ID, models.TransactionTypeExpense, 10, "USD", category.ID, "2025-06-15", "")
		testutil.AssertNoError(t, err)

		before := tx.UpdatedAt
		testutil.AssertNoError(t, service.Delete(user.ID, tx.ID))

		var stored models.Transaction
		testutil.AssertNoError(t, db.First(&stored, "id = ?", tx.ID).Error)
		if !stored.UpdatedAt.Equal(before) {
			t.Errorf("delete changed updated_at from %v to %v", before, stored.UpdatedAt)
		}
	})
}
