package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/centsible/backend/internal/config"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the data directory for the database
	err = os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
