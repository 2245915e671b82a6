package services

import (
	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/personal-finance-dashboard/internal/ledger"
	"github.com/appdotbuilder/personal-finance-dashboard/internal/models"
)

// Summary is the derived financial summary for one reporting period.
// MonthlyData is present only for yearly periods and then always holds
// exactly 12 entries.
type Summary struct {
	TotalIncome   decimal.Decimal     `json:"total_income"`
	TotalExpenses decimal.Decimal     `json:"total_expenses"`
	NetIncome     decimal.Decimal     `json:"net_income"`
	Categories    []CategoryBreakdown `json:"categories"`
	MonthlyData   []MonthlySummary    `json:"monthly_data,omitempty"`
}

// summaryService computes financial summaries from the ledger.
type summaryService struct {
	ledger ledger.Reader
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(ledger ledger.Reader) SummaryServicer {
	return &summaryService{ledger: ledger}
}

// GetSummary builds the income/expense summary for the requested period.
// A user with no transactions in range gets zero totals and an empty
// category list, not an error.
func (s *summaryService) GetSummary(userID uint, req SummaryRequest) (*Summary, error) {
	window, err := resolvePeriod(req.Period, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	// One unfiltered fetch; totals, category groups, and the monthly
	// series are all derived from the same snapshot.
	transactions, err := s.ledger.Transactions(userID, ledger.Query{
		Start: window.start,
		End:   window.end,
	})
	if err != nil {
		return nil, err
	}

	income := sumByType(transactions, models.TransactionTypeIncome)
	expenses := sumByType(transactions, models.TransactionTypeExpense)

	summary := &Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetIncome:     income.Sub(expenses),
		Categories:    groupByCategory(transactions),
	}
	if req.Period == models.BudgetPeriodYearly {
		summary.MonthlyData = monthlyBreakdown(transactions)
	}
	return summary, nil
}
