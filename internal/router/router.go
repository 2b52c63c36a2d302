// Package router assembles the gin engine and its middleware stack.
package router

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/centsible/backend/internal/config"
	"github.com/centsible/backend/internal/controllers/healthz"
	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router controls the routes for the API.
func Router(cfg config.Config) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "this HTTP method is not allowed for the endpoint you called"})
	})

	// CORS settings
	if cfg.CORS.AllowOrigins != "" {
		log.Debug().Str("allowOrigins", cfg.CORS.AllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(cfg.CORS.AllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if err := registerPrometheusMetrics(); err != nil {
		return nil, err
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.GET("/version", GetVersion)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles in debug mode
	if gin.IsDebugging() {
		pprof.RouteRegister(&r.RouterGroup, "debug/pprof")
	}

	healthz.RegisterRoutes(r.Group("/healthz"))
	v1.RegisterRoutes(r.Group(""), cfg)

	log.Info().Str("version", version).Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Dashboard string `json:"dashboard" example:"/dashboard"`
	Register  string `json:"register" example:"/register"`
	Version   string `json:"version" example:"/version"`
	Healthz   string `json:"healthz" example:"/healthz"`
	Metrics   string `json:"metrics" example:"/metrics"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing the endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Dashboard: "/dashboard",
			Register:  "/register",
			Version:   "/version",
			Healthz:   "/healthz",
			Metrics:   "/metrics",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}
