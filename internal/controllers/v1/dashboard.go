package v1

import (
	"net/http"
	"strconv"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/report"
	"github.com/gin-gonic/gin"
)

// @Summary		Get dashboard
// @Description	Returns the aggregated dashboard for the current user
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/dashboard [get]
func GetDashboard(c *gin.Context) {
	userID := currentUserID(c)

	transactions, err := models.TransactionsForUser(userID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	budgets, err := models.BudgetsForUser(userID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	goal, err := models.SavingsGoalForUser(userID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	history, err := models.NetWorthHistoryForUser(userID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data: DashboardData{
			Dashboard:    report.Build(transactions, budgets, goal, history),
			Transactions: transactions,
		},
	})
}

// @Summary		Create transaction
// @Description	Records a transaction. The category is detected from the description.
// @Tags			Dashboard
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/dashboard [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	transaction := editable.model(currentUserID(c), report.Classify(editable.Description))

	err = models.DB.Create(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction of the current user
// @Tags			Dashboard
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		int	true	"ID of the transaction"
// @Router			/delete/{id} [get]
func DeleteTransaction(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "the ID must be a number"})
		return
	}

	err = models.DeleteTransaction(uint(id), currentUserID(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
