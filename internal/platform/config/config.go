package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool
	RunMigrations bool
	MigrationsURL string

	// JWTSecret verifies bearer tokens issued by the identity provider.
	JWTSecret string

	// Exchange-rate provider
	ExchangeRatesAPIKey string
	ExchangeRatesAPIURL string
	ProviderTimeout     time.Duration
	ProviderRPS         float64
	ProviderBurst       int

	RateTTL     time.Duration
	HistoryDays int
	HistoryBase string

	// Inbound rate limiting, ulule format ("60-M").
	RateLimit string
	RedisURL  string

	CORSOrigins []string
}

const (
	defaultJWTSecret   = "a-very-secret-key-should-be-longer-and-random"
	defaultProviderURL = "http://api.exchangeratesapi.io/v1"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("EXCHANGE_RATES_API_KEY", "")
	v.SetDefault("EXCHANGE_RATES_API_URL", defaultProviderURL)
	v.SetDefault("PROVIDER_TIMEOUT", "10s")
	v.SetDefault("PROVIDER_RPS", 5.0)
	v.SetDefault("PROVIDER_BURST", 7)
	v.SetDefault("RATE_TTL", "24h")
	v.SetDefault("HISTORY_DAYS", 7)
	v.SetDefault("HISTORY_BASE", "EUR")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ORIGINS", "")
	v.AutomaticEnv()

	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		DatabaseURL:         v.GetString("PGSQL_URL"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:       v.GetBool("RUN_MIGRATIONS"),
		MigrationsURL:       v.GetString("MIGRATIONS_PATH"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		ExchangeRatesAPIKey: v.GetString("EXCHANGE_RATES_API_KEY"),
		ExchangeRatesAPIURL: strings.TrimRight(v.GetString("EXCHANGE_RATES_API_URL"), "/"),
		ProviderRPS:         v.GetFloat64("PROVIDER_RPS"),
		ProviderBurst:       v.GetInt("PROVIDER_BURST"),
		HistoryDays:         v.GetInt("HISTORY_DAYS"),
		HistoryBase:         strings.ToUpper(v.GetString("HISTORY_BASE")),
		RateLimit:           v.GetString("RATE_LIMIT"),
		RedisURL:            v.GetString("REDIS_URL"),
		CORSOrigins:         splitList(v.GetString("CORS_ORIGINS")),
	}

	cfg.ProviderTimeout = durationOrDefault(v.GetString("PROVIDER_TIMEOUT"), 10*time.Second, "PROVIDER_TIMEOUT")
	cfg.RateTTL = durationOrDefault(v.GetString("RATE_TTL"), 24*time.Hour, "RATE_TTL")

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory storage.")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	// A missing key is reported per request, never silently degraded.
	if cfg.ExchangeRatesAPIKey == "" {
		log.Println("Warning: EXCHANGE_RATES_API_KEY not set. Exchange-rate endpoints will fail with a configuration error.")
	}
	if cfg.HistoryDays <= 0 {
		log.Printf("Warning: Invalid value for HISTORY_DAYS (%d). Defaulting to 7.\n", cfg.HistoryDays)
		cfg.HistoryDays = 7
	}
	if cfg.ProviderBurst <= 0 {
		cfg.ProviderBurst = 1
	}

	return cfg, nil
}

func durationOrDefault(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
