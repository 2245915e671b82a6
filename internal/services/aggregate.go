package services

import (
	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/personal-finance-dashboard/internal/models"
)

// CategoryBreakdown is one entry of a summary's per-category totals.
// TotalAmount is the sum of all transaction amounts recorded against the
// category within the period, irrespective of type: income and expense
// magnitudes are combined.
type CategoryBreakdown struct {
	CategoryID       *uint           `json:"category_id"`
	CategoryName     *string         `json:"category_name"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TransactionCount int             `json:"transaction_count"`
}

// MonthlySummary holds income and expense totals for one calendar month.
type MonthlySummary struct {
	Month    int             `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// sumAmounts adds up every transaction amount in decimal space.
func sumAmounts(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(tx.Amount)
	}
	return total
}

// sumByType adds up the amounts of transactions of the given type.
func sumByType(transactions []models.Transaction, t models.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == t {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// groupByCategory produces combined per-category totals and counts.
// Uncategorized transactions form a single entry with nil id and name.
// Entry order is unspecified.
func groupByCategory(transactions []models.Transaction) []CategoryBreakdown {
	index := make(map[uint]int)
	uncategorized := -1
	entries := []CategoryBreakdown{}

	for _, tx := range transactions {
		var pos int
		if tx.CategoryID == nil {
			if uncategorized == -1 {
				uncategorized = len(entries)
				entries = append(entries, CategoryBreakdown{TotalAmount: decimal.Zero})
			}
			pos = uncategorized
		} else {
			p, ok := index[*tx.CategoryID]
			if !ok {
				p = len(entries)
				index[*tx.CategoryID] = p
				entry := CategoryBreakdown{CategoryID: tx.CategoryID, TotalAmount: decimal.Zero}
				if tx.Category != nil {
					name := tx.Category.Name
					entry.CategoryName = &name
				}
				entries = append(entries, entry)
			}
			pos = p
		}
		entries[pos].TotalAmount = entries[pos].TotalAmount.Add(tx.Amount)
		entries[pos].TransactionCount++
	}

	return entries
}

// monthlyBreakdown splits income and expense totals across the 12 calendar
// months. Every month is present even with no activity.
func monthlyBreakdown(transactions []models.Transaction) []MonthlySummary {
	months := make([]MonthlySummary, 12)
	for i := range months {
		months[i] = MonthlySummary{Month: i + 1, Income: decimal.Zero, Expenses: decimal.Zero}
	}
	for _, tx := range transactions {
		m := int(tx.Date.Month()) - 1
		switch tx.Type {
		case models.TransactionTypeIncome:
			months[m].Income = months[m].Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			months[m].Expenses = months[m].Expenses.Add(tx.Amount)
		}
	}
	return months
}
