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
	JWTSecret    string
	JWTIssuer    string
	RateLimit    string // ulule/limiter format, e.g. "100-M"

	// Reconciliation validation limits. Zero means use the built-in default.
	ReconMaxDateAgeDays  int
	ReconVariancePercent float64
	ReconMaxNotesLength  int
	ReconMinAmount       float64
	ReconMaxAmount       float64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "ledger-engine")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("RECON_MAX_DATE_AGE_DAYS", 0)
	viper.SetDefault("RECON_VARIANCE_PERCENT", 0.0)
	viper.SetDefault("RECON_MAX_NOTES_LENGTH", 0)
	viper.SetDefault("RECON_MIN_AMOUNT", 0.0)
	viper.SetDefault("RECON_MAX_AMOUNT", 0.0)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" && cfg.IsProduction {
		log.Println("Warning: JWT_SECRET not set in production. Using default insecure key.")
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.ReconMaxDateAgeDays = viper.GetInt("RECON_MAX_DATE_AGE_DAYS")
	cfg.ReconVariancePercent = viper.GetFloat64("RECON_VARIANCE_PERCENT")
	cfg.ReconMaxNotesLength = viper.GetInt("RECON_MAX_NOTES_LENGTH")
	cfg.ReconMinAmount = viper.GetFloat64("RECON_MIN_AMOUNT")
	cfg.ReconMaxAmount = viper.GetFloat64("RECON_MAX_AMOUNT")

	return cfg, nil
}
