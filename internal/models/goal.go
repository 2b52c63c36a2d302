package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SavingsGoal is the target balance of a user.
//
// Every user has at most one savings goal. Setting a new goal replaces
// the previous one in a single upsert statement.
type SavingsGoal struct {
	DefaultModel
	UserID uint            `json:"userId" gorm:"uniqueIndex"`
	User   User            `json:"-"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
}

// SetSavingsGoal creates or replaces the savings goal of the user.
func SetSavingsGoal(userID uint, amount decimal.Decimal) (SavingsGoal, error) {
	goal := SavingsGoal{
		UserID: userID,
		Amount: amount,
	}

	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(&goal).Error

	return goal, err
}

// SavingsGoalForUser returns the savings goal of the user or nil if none
// is configured.
func SavingsGoalForUser(userID uint) (*SavingsGoal, error) {
	var goal SavingsGoal
	err := DB.Where(&SavingsGoal{UserID: userID}).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrResourceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &goal, nil
}
