package services

import (
	"testing"
	"time"

	"github.com/appdotbuilder/personal-finance-dashboard/internal/models"
	"github.com/appdotbuilder/personal-finance-dashboard/internal/pagination"
	"github.com/appdotbuilder/personal-finance-dashboard/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)

		budget, err := svc.CreateBudget(user.ID, &cat.ID, "Groceries", testutil.MustDecimal(t, "500.00"), models.BudgetPeriodMonthly)
		testutil.AssertNoError(t, err)

		if budget.ID == 0 {
			t.Fatal("expected non-zero budget ID")
		}
		if budget.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %s", budget.Name)
		}
		testutil.AssertDecimalEqual(t, "500.00", budget.Amount)
		if budget.Period != models.BudgetPeriodMonthly {
			t.Errorf("expected period monthly, got %s", budget.Period)
		}
	})

	t.Run("overall_budget_without_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, nil, "Everything", testutil.MustDecimal(t, "2000"), models.BudgetPeriodYearly)
		testutil.AssertNoError(t, err)

		if budget.CategoryID != nil {
			t.Error("expected nil category ID for overall budget")
		}
	})

	t.Run("rounds_amount_to_cents", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, nil, "Rounded", testutil.MustDecimal(t, "99.999"), models.BudgetPeriodMonthly)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, "100.00", budget.Amount)
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, nil, "Zero", testutil.MustDecimal(t, "0"), models.BudgetPeriodMonthly)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, nil, "Weekly", testutil.MustDecimal(t, "100"), models.BudgetPeriod("weekly"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_other_users_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user2.ID)

		_, err := svc.CreateBudget(user1.ID, &cat.ID, "Not Mine", testutil.MustDecimal(t, "100"), models.BudgetPeriodMonthly)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestGetUserBudgets(t *testing.T) {
	t.Run("returns_user_budgets_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user1.ID, nil, "100", models.BudgetPeriodMonthly)
		testutil.CreateTestBudget(t, db, user1.ID, nil, "200", models.BudgetPeriodYearly)
		testutil.CreateTestBudget(t, db, user2.ID, nil, "300", models.BudgetPeriodMonthly)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		result, err := svc.GetUserBudgets(user1.ID, page, nil)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 budgets, got %d", result.TotalItems)
		}
	})

	t.Run("filter_by_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user.ID, nil, "100", models.BudgetPeriodMonthly)
		testutil.CreateTestBudget(t, db, user.ID, nil, "200", models.BudgetPeriodYearly)

		page := pagination.PageRequest{Page: 1, PageSize: 20}
		yearly := models.BudgetPeriodYearly
		result, err := svc.GetUserBudgets(user.ID, page, &yearly)
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 yearly budget, got %d", result.TotalItems)
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("updates_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, nil, "100", models.BudgetPeriodMonthly)

		_, err := svc.UpdateBudget(user.ID, budget.ID, BudgetPatch{Amount: Set(testutil.MustDecimal(t, "250.50"))})
		testutil.AssertNoError(t, err)

		updated, err := svc.GetBudgetByID(user.ID, budget.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "250.50", updated.Amount)
	})

	t.Run("clears_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)
		budget := testutil.CreateTestBudget(t, db, user.ID, &cat.ID, "100", models.BudgetPeriodMonthly)

		_, err := svc.UpdateBudget(user.ID, budget.ID, BudgetPatch{CategoryID: Set[*uint](nil)})
		testutil.AssertNoError(t, err)

		updated, err := svc.GetBudgetByID(user.ID, budget.ID)
		testutil.AssertNoError(t, err)
		if updated.CategoryID != nil {
			t.Error("expected category to be cleared")
		}
	})

	t.Run("not_found_for_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user1.ID, nil, "100", models.BudgetPeriodMonthly)

		_, err := svc.UpdateBudget(user2.ID, budget.ID, BudgetPatch{Name: Set("Stolen")})
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestDeleteBudget(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)
	budget := testutil.CreateTestBudget(t, db, user.ID, nil, "100", models.BudgetPeriodMonthly)

	testutil.AssertNoError(t, svc.DeleteBudget(user.ID, budget.ID))

	_, err := svc.GetBudgetByID(user.ID, budget.ID)
	testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
}

func TestGetBudgetProgress(t *testing.T) {
	t.Run("sums_current_period_spending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, user.ID)
		budget := testutil.CreateTestBudget(t, db, user.ID, &cat.ID, "200.00", models.BudgetPeriodMonthly)

		testutil.CreateTestTransaction(t, db, user.ID, &cat.ID, models.TransactionTypeExpense, "50.00", time.Now())
		testutil.CreateTestTransaction(t, db, user.ID, &cat.ID, models.TransactionTypeIncome, "500.00", time.Now())

		progress, err := svc.GetBudgetProgress(user.ID, budget.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, "50.00", progress.Spent)
		testutil.AssertDecimalEqual(t, "150.00", progress.Remaining)
		testutil.AssertDecimalEqual(t, "25.00", progress.Percentage)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetBudgetProgress(user.ID, 9999)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}
