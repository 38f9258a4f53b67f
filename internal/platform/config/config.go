package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds the currency store service configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	EnableDBCheck    bool
	JWTSecret        string
	JWTIssuer        string
	FrontendBaseURL  string
	RateLimit        string // ulule format, e.g. "10-M"
	RatesRefreshCron string // empty disables the schedule
	KafkaBrokers     []string
	KafkaTopic       string
	PosthogAPIKey    string
	LogLevel         slog.Level
}

// AdminConfig holds the admin CLI configuration.
type AdminConfig struct {
	APIURL         string
	APIToken       string
	JWTSecret      string
	JWTIssuer      string
	AdminSubject   string
	RequestTimeout time.Duration
	LogLevel       slog.Level
}

func newViper() *viper.Viper {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "currency-store")
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()
	return v
}

// LoadConfig loads the store service configuration from environment
// variables and .env file if present.
func LoadConfig() (*Config, error) {
	v := newViper()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "10-M")
	v.SetDefault("RATES_REFRESH_CRON", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "currency-events")
	v.SetDefault("POSTHOG_API_KEY", "")

	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		FrontendBaseURL:  v.GetString("FRONTEND_BASE_URL"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		RatesRefreshCron: v.GetString("RATES_REFRESH_CRON"),
		KafkaBrokers:     splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:       v.GetString("KAFKA_TOPIC"),
		PosthogAPIKey:    v.GetString("POSTHOG_API_KEY"),
		LogLevel:         parseLevel(v.GetString("LOG_LEVEL")),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}

// LoadAdminConfig loads the admin CLI configuration from environment
// variables and .env file if present.
func LoadAdminConfig() (*AdminConfig, error) {
	v := newViper()
	v.SetDefault("CURRENCY_API_URL", "http://localhost:8080/api/v1")
	v.SetDefault("CURRENCY_API_TOKEN", "")
	v.SetDefault("ADMIN_SUBJECT", "currency-admin")
	v.SetDefault("REQUEST_TIMEOUT", "30s")

	timeoutStr := v.GetString("REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for REQUEST_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}

	return &AdminConfig{
		APIURL:         v.GetString("CURRENCY_API_URL"),
		APIToken:       v.GetString("CURRENCY_API_TOKEN"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		AdminSubject:   v.GetString("ADMIN_SUBJECT"),
		RequestTimeout: timeout,
		LogLevel:       parseLevel(v.GetString("LOG_LEVEL")),
	}, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
