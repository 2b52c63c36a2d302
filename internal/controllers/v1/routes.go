// Package v1 implements the HTTP handlers of the Centsible API.
package v1

import (
	"github.com/centsible/backend/internal/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API routes with the RouterGroup that is
// passed.
//
// The route layout is flat: login at the root, one action route per
// dashboard operation.
func RegisterRoutes(r *gin.RouterGroup, cfg config.Config) {
	sessionSecret = []byte(cfg.Session.Secret)
	sessionLifetime = cfg.Session.Lifetime

	// Routes that work without a session
	{
		r.POST("", Login)
		r.POST("/register", Register)
		r.GET("/logout", Logout)
	}

	// Routes that require a session
	authenticated := r.Group("", RequireSession())
	{
		authenticated.GET("/dashboard", GetDashboard)
		authenticated.POST("/dashboard", CreateTransaction)
		authenticated.GET("/delete/:id", DeleteTransaction)
		authenticated.POST("/add_budget", AddBudget)
		authenticated.POST("/set_goal", SetGoal)
		authenticated.POST("/update_networth", UpdateNetWorth)
		authenticated.POST("/import_csv", ImportCSV)
		authenticated.GET("/export", Export)
	}
}
