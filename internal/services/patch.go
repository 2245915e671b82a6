package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/appdotbuilder/personal-finance-dashboard/internal/models"
)

// Optional represents a patch field that is either unset or set to a value.
// The zero value is unset; fields are never inferred from key presence in a
// generic map.
type Optional[T any] struct {
	value T
	valid bool
}

// Set returns an Optional carrying the given value.
func Set[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// CategoryPatch carries partial updates for a category.
type CategoryPatch struct {
	Name  Optional[string]
	Color Optional[string]
	Icon  Optional[string]
}

// TransactionPatch carries partial updates for a transaction.
// Set(nil) on CategoryID detaches the transaction from its category.
type TransactionPatch struct {
	CategoryID  Optional[*uint]
	Type        Optional[models.TransactionType]
	Amount      Optional[decimal.Decimal]
	Description Optional[string]
	Date        Optional[time.Time]
}

// BudgetPatch carries partial updates for a budget.
// Set(nil) on CategoryID turns it into an overall budget.
type BudgetPatch struct {
	CategoryID Optional[*uint]
	Name       Optional[string]
	Amount     Optional[decimal.Decimal]
	Period     Optional[models.BudgetPeriod]
}
