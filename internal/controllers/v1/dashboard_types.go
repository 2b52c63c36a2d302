package v1

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/report"
)

type DashboardResponse struct {
	Data DashboardData `json:"data"`
}

// DashboardData is the aggregated view plus the transaction list it was
// derived from.
type DashboardData struct {
	report.Dashboard
	Transactions []models.Transaction `json:"transactions"`
}
