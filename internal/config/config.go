// Package config reads the backend configuration from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the backend needs to run.
type Config struct {
	ListenAddress string `envconfig:"LISTEN_ADDRESS" default:":8080"`
	DatabasePath  string `envconfig:"DATABASE_PATH" default:"data/pocketquest.db"`
	GinMode       string `envconfig:"GIN_MODE" default:"release"`
	LogFormat     string `envconfig:"LOG_FORMAT" default:""`

	// SessionSecret signs the session cookies. The default is only
	// acceptable for local development.
	SessionSecret string `envconfig:"SESSION_SECRET" default:"pocketquest-dev-secret"`

	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:""`
	EnablePprof      bool   `envconfig:"ENABLE_PPROF" default:"false"`

	// Telegram alert delivery is optional. When the token is empty,
	// threshold alerts are only persisted, not pushed anywhere.
	TelegramToken  string `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	TelegramChatID int64  `envconfig:"TELEGRAM_CHAT_ID" default:"0"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}
