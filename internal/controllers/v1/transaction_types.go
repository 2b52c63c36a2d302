package v1

import (
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type models.TransactionType `json:"type" form:"type" binding:"required" example:"Expense"` // Income or Expense

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" form:"amount" binding:"required" example:"14.03"` // The amount for the transaction

	Description string `json:"description" form:"description" binding:"required" example:"Swiggy order #123"` // Free text, used to auto-detect the category
}

// model returns the database resource for the API representation of the
// editable fields. The category is always derived from the description.
func (editable TransactionEditable) model(userID uint, category string) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Type:        editable.Type,
		Category:    category,
		Description: editable.Description,
		Amount:      editable.Amount,
	}
}

type TransactionResponse struct {
	Data models.Transaction `json:"data"`
}

type TransactionImportResponse struct {
	Data []models.Transaction `json:"data"` // The imported transactions
}
