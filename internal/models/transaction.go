package models

import (
	"errors"
	"strings"

	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines whether a transaction adds to or subtracts
// from the balance.
type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

var ErrTransactionTypeInvalid = errors.New("the transaction type must be Income or Expense")

// Transaction represents a single income or expense booking of a user.
type Transaction struct {
	DefaultModel
	UserID      uint            `json:"userId" gorm:"index"`
	User        User            `json:"-"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Period      types.Period    `json:"period"`
}

// BeforeSave validates the type and defaults the period to the current
// month.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Type != TypeIncome && t.Type != TypeExpense {
		return ErrTransactionTypeInvalid
	}

	if t.Period.IsZero() {
		t.Period = types.CurrentPeriod()
	}

	return nil
}

// TransactionsForUser returns all transactions of the user in insertion
// order.
func TransactionsForUser(userID uint) ([]Transaction, error) {
	var transactions []Transaction
	err := DB.Where(&Transaction{UserID: userID}).Order("id ASC").Find(&transactions).Error
	return transactions, err
}

// DeleteTransaction deletes the transaction with the ID if it belongs to
// the user.
//
// When the transaction belongs to another user, ErrNotOwned is returned
// so that callers can distinguish it from an unknown ID.
func DeleteTransaction(id, userID uint) error {
	var transaction Transaction
	err := DB.First(&transaction, id).Error
	if err != nil {
		return err
	}

	if transaction.UserID != userID {
		return ErrNotOwned
	}

	return DB.Delete(&transaction).Error
}
