package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type NetWorthEditable struct {
	Asset     decimal.Decimal `json:"asset" form:"asset" binding:"required" example:"15000"`    // Total assets
	Liability decimal.Decimal `json:"liability" form:"liability" binding:"required" example:"4000"` // Total liabilities
}

type NetWorthResponse struct {
	Data models.NetWorthSample `json:"data"`
}

// @Summary		Update net worth
// @Description	Appends a net worth sample for the current period. History accumulates, it is never overwritten.
// @Tags			NetWorth
// @Accept			json
// @Produce		json
// @Success		201			{object}	NetWorthResponse
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Param			networth	body		NetWorthEditable	true	"Net worth"
// @Router			/update_networth [post]
func UpdateNetWorth(c *gin.Context) {
	var editable NetWorthEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	sample := models.NetWorthSample{
		UserID:    currentUserID(c),
		Asset:     editable.Asset,
		Liability: editable.Liability,
	}

	err = models.DB.Create(&sample).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, NetWorthResponse{Data: sample})
}
