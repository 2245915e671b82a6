package services

import (
	"time"

	apperrors "github.com/appdotbuilder/personal-finance-dashboard/internal/errors"
	"github.com/appdotbuilder/personal-finance-dashboard/internal/models"
)

// periodRange is an inclusive date range covering one reporting period.
type periodRange struct {
	start time.Time
	end   time.Time
}

// resolvePeriod converts a period kind plus year (and month, for monthly
// periods) into the inclusive range of that calendar period in UTC.
// The end covers the whole final day.
func resolvePeriod(period models.BudgetPeriod, year, month int) (periodRange, error) {
	switch period {
	case models.BudgetPeriodMonthly:
		if month == 0 {
			return periodRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month is required for monthly summaries")
		}
		if month < 1 || month > 12 {
			return periodRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return periodRange{start: start, end: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}, nil

	case models.BudgetPeriodYearly:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 23, 59, 59, 999999999, time.UTC)
		return periodRange{start: start, end: end}, nil

	default:
		return periodRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be 'monthly' or 'yearly'")
	}
}

// currentPeriod resolves the period instance containing now. Budgets always
// evaluate against the present month or year, never a historical window.
func currentPeriod(now time.Time, period models.BudgetPeriod) periodRange {
	if period == models.BudgetPeriodYearly {
		return periodRange{
			start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			end:   time.Date(now.Year(), time.December, 31, 23, 59, 59, 999999999, now.Location()),
		}
	}
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return periodRange{start: start, end: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}
