package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category string          `json:"category" form:"category" binding:"required" example:"Food"` // The category the limit applies to
	Limit    decimal.Decimal `json:"limit" form:"limit" binding:"required" example:"500"`        // The monthly spending ceiling
}

type BudgetResponse struct {
	Data models.Budget `json:"data"`
}

// @Summary		Set budget
// @Description	Sets the spending limit for a category. An existing limit for the category is replaced.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/add_budget [post]
func AddBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budget, err := models.SetBudget(currentUserID(c), editable.Category, editable.Limit)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: budget})
}
