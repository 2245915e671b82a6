package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/personal-finance-dashboard/internal/ledger"
	"github.com/appdotbuilder/personal-finance-dashboard/internal/models"
)

// BudgetAlert flags a budget whose current-period spending reached the
// alert threshold. CategoryName is nil for overall budgets.
type BudgetAlert struct {
	BudgetID       uint                `json:"budget_id"`
	CategoryName   *string             `json:"category_name"`
	BudgetAmount   decimal.Decimal     `json:"budget_amount"`
	SpentAmount    decimal.Decimal     `json:"spent_amount"`
	PercentageUsed decimal.Decimal     `json:"percentage_used"`
	Period         models.BudgetPeriod `json:"period"`
}

// alertThreshold is the percentage-used cutoff at which a budget alerts.
var alertThreshold = decimal.NewFromInt(80)

var oneHundred = decimal.NewFromInt(100)

// alertService evaluates budgets against current-period spending.
// The clock is injected so tests can pin "now".
type alertService struct {
	ledger ledger.Reader
	now    func() time.Time
}

// NewAlertService creates a new AlertServicer.
func NewAlertService(ledger ledger.Reader) AlertServicer {
	return &alertService{ledger: ledger, now: time.Now}
}

// GetBudgetAlerts evaluates every budget of the user against the current
// month or year and returns those at or above the threshold, highest usage
// first. A user with no budgets gets an empty list.
func (s *alertService) GetBudgetAlerts(userID uint) ([]BudgetAlert, error) {
	budgets, err := s.ledger.Budgets(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expense := models.TransactionTypeExpense
	alerts := []BudgetAlert{}

	for _, budget := range budgets {
		window := currentPeriod(now, budget.Period)

		// A nil CategoryID leaves the category dimension unfiltered,
		// so overall budgets sum every expense in range.
		transactions, err := s.ledger.Transactions(userID, ledger.Query{
			Start:      window.start,
			End:        window.end,
			Type:       &expense,
			CategoryID: budget.CategoryID,
		})
		if err != nil {
			return nil, err
		}

		spent := sumAmounts(transactions)
		percentage := decimal.Zero
		if budget.Amount.IsPositive() {
			// Round half-up at the second decimal place.
			percentage = spent.Mul(oneHundred).DivRound(budget.Amount, 2)
		}
		if percentage.LessThan(alertThreshold) {
			continue
		}

		var categoryName *string
		if budget.Category != nil {
			name := budget.Category.Name
			categoryName = &name
		}
		alerts = append(alerts, BudgetAlert{
			BudgetID:       budget.ID,
			CategoryName:   categoryName,
			BudgetAmount:   budget.Amount,
			SpentAmount:    spent,
			PercentageUsed: percentage,
			Period:         budget.Period,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].PercentageUsed.GreaterThan(alerts[j].PercentageUsed)
	})
	return alerts, nil
}
