// Package config aggregates application configuration from environment
// variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrSessionSecretMissing is returned when no session secret is
// configured. Without it, session tokens cannot be signed.
var ErrSessionSecretMissing = errors.New("the session secret must be configured, set CENTSIBLE_SESSION_SECRET")

// Config holds application level configuration.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Session struct {
		Secret   string
		Lifetime time.Duration
	}
	CORS struct {
		AllowOrigins string
	}
}

// Load reads configuration from the environment and an optional
// config.yaml in the working directory. A .env file is loaded first if
// present.
func Load() (Config, error) {
	// Missing .env files are fine, the environment may be set directly
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CENTSIBLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("database.path", "data/centsible.db")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.lifetime", 24*time.Hour)
	v.SetDefault("cors.alloworigins", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Session.Secret == "" {
		return Config{}, ErrSessionSecretMissing
	}

	return cfg, nil
}
