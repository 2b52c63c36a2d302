package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Goal decimal.Decimal `json:"goal" form:"goal" binding:"required" example:"10000"` // The target balance
}

type GoalResponse struct {
	Data models.SavingsGoal `json:"data"`
}

// @Summary		Set savings goal
// @Description	Sets the savings goal. Users have exactly one goal, setting a new one replaces it.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/set_goal [post]
func SetGoal(c *gin.Context) {
	var editable GoalEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	goal, err := models.SetSavingsGoal(currentUserID(c), editable.Goal)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goal})
}
