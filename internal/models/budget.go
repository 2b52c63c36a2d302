package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is a per-category spending ceiling of a user.
//
// There is at most one budget per user and category. Setting a budget
// for the same category again replaces the previous limit.
type Budget struct {
	DefaultModel
	UserID   uint            `json:"userId" gorm:"uniqueIndex:budget_user_category"`
	User     User            `json:"-"`
	Category string          `json:"category" gorm:"uniqueIndex:budget_user_category"`
	Limit    decimal.Decimal `json:"limit" gorm:"column:limit_amount;type:DECIMAL(20,8)"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	return nil
}

// SetBudget creates the budget for the category or, if one exists,
// replaces its limit.
func SetBudget(userID uint, category string, limit decimal.Decimal) (Budget, error) {
	budget := Budget{
		UserID:   userID,
		Category: strings.TrimSpace(category),
		Limit:    limit,
	}

	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
	}).Create(&budget).Error

	return budget, err
}

// BudgetsForUser returns all budgets of the user.
func BudgetsForUser(userID uint) ([]Budget, error) {
	var budgets []Budget
	err := DB.Where(&Budget{UserID: userID}).Order("id ASC").Find(&budgets).Error
	return budgets, err
}
