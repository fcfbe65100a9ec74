package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// CasdoorConfig holds the identity provider settings. When Endpoint or
// ClientID is empty the provider is considered unconfigured.
type CasdoorConfig struct {
	Endpoint     string
	ClientID     string
	ClientSecret string
	Cert         string
	Organization string
	Application  string
}

// Configured reports whether identity verification can run.
func (c CasdoorConfig) Configured() bool {
	return c.Endpoint != "" && c.ClientID != ""
}

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// Storage
	Storage     string // "postgres" or "memory"
	DatabaseURL string
	RedisURL    string

	// Events
	KafkaBrokers []string

	// External providers
	Casdoor      CasdoorConfig
	GeminiAPIKey string
	GeminiModel  string
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// LoadConfig reads configuration from the environment, loading .env first
// when present.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", EnvDevelopment),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		Storage:     getEnv("STORAGE", StorageMemory),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		Casdoor: CasdoorConfig{
			Endpoint:     os.Getenv("CASDOOR_ENDPOINT"),
			ClientID:     os.Getenv("CASDOOR_CLIENT_ID"),
			ClientSecret: os.Getenv("CASDOOR_CLIENT_SECRET"),
			Cert:         os.Getenv("CASDOOR_CERT"),
			Organization: os.Getenv("CASDOOR_ORGANIZATION"),
			Application:  os.Getenv("CASDOOR_APPLICATION"),
		},
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("invalid STORAGE %q: must be %q or %q", cfg.Storage, StoragePostgres, StorageMemory)
	}
	if cfg.Storage == StoragePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("STORAGE=postgres requires DATABASE_URL")
	}

	return cfg, nil
}

// IsDevelopment reports whether the process runs under the explicitly
// flagged development profile. Only this profile may bypass identity
// verification.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
