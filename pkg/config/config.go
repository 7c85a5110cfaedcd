package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// JWTSecret verifies the bearer tokens presented by upstream service
	// callers on /api/v1 routes.
	JWTSecret string

	// OpsTokenHash is the bcrypt hash of the operator token guarding the
	// /admin master data routes.
	OpsTokenHash string

	// RateLimit is a ulule/limiter formatted rate ("100-M" = 100 req/min).
	RateLimit string

	// AllowedOrigins is the comma-separated CORS allowlist; "*" allows all.
	AllowedOrigins string

	// BackfillLimit caps events scanned per tenant per kind in one run.
	BackfillLimit int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SERVICE_JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("OPS_TOKEN_HASH", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("BACKFILL_LIMIT", 1000)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		JWTSecret:      viper.GetString("SERVICE_JWT_SECRET"),
		OpsTokenHash:   viper.GetString("OPS_TOKEN_HASH"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
		AllowedOrigins: viper.GetString("ALLOWED_ORIGINS"),
		BackfillLimit:  viper.GetInt("BACKFILL_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: SERVICE_JWT_SECRET not set. Using default insecure key.")
	}
	if cfg.OpsTokenHash == "" {
		log.Println("Warning: OPS_TOKEN_HASH not set. Admin routes will refuse access.")
	}

	return cfg, nil
}
