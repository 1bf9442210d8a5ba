package config

import (
	"github.com/joho/godotenv"

	"storefront.GO/core/log"
)

func LoadEnv() {
	// If .env is missing, ignore error (env vars can be set by other means)
	_ = godotenv.Load()
	log.Debug().Msg("environment variables loaded (if .env present)")
}
