// Package ledger exposes a read-only view over a user's transactions,
// categories, and budgets. The summary and alert services depend on this
// interface rather than on the database directly, so a consistent snapshot
// source can be substituted in tests.
package ledger

import (
	"time"

	apperrors "github.com/appdotbuilder/personal-finance-dashboard/internal/errors"
	"github.com/appdotbuilder/personal-finance-dashboard/internal/models"

	"gorm.io/gorm"
)

// Query narrows a transaction read to a date range with optional type and
// category filters. Start and End are inclusive. A nil Type or CategoryID
// leaves that dimension unfiltered.
type Query struct {
	Start      time.Time
	End        time.Time
	Type       *models.TransactionType
	CategoryID *uint
}

// Reader is the read-only ledger access interface.
type Reader interface {
	// Transactions returns the user's transactions matching the query,
	// with categories preloaded for name lookups.
	Transactions(userID uint, q Query) ([]models.Transaction, error)
	// Budgets returns all of the user's budgets with categories preloaded.
	Budgets(userID uint) ([]models.Budget, error)
	// Categories returns all of the user's categories.
	Categories(userID uint) ([]models.Category, error)
}

type gormReader struct {
	db *gorm.DB
}

// NewReader creates a Reader backed by the given GORM database.
func NewReader(db *gorm.DB) Reader {
	return &gormReader{db: db}
}

func (r *gormReader) Transactions(userID uint, q Query) ([]models.Transaction, error) {
	base := r.db.Model(&models.Transaction{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, q.Start, q.End)
	if q.Type != nil {
		base = base.Where("type = ?", *q.Type)
	}
	if q.CategoryID != nil {
		base = base.Where("category_id = ?", *q.CategoryID)
	}

	var transactions []models.Transaction
	if err := base.Preload("Category").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func (r *gormReader) Budgets(userID uint) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Preload("Category").Where("user_id = ?", userID).Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

func (r *gormReader) Categories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}
