package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string
	// Auth
	SessionSecret string
	TokenSecret   string
	// Pipeline
	ConventionsFile string // optional YAML overriding folder conventions
	// Logging
	LogDir      string // when set, logs also go to timestamped files here
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	tablePrefix := getTablePrefix(env)

	sessionSecret := getEnv("SESSION_SECRET", "dev-session-secret")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:   tablePrefix,
		SessionSecret: sessionSecret,
		// Bearer tokens fall back to the session secret so a single
		// env var is enough for small deployments
		TokenSecret:     getEnv("TOKEN_SECRET", sessionSecret),
		ConventionsFile: getEnv("CONVENTIONS_FILE", ""),
		LogDir:          getEnv("LOG_DIR", ""),
		LogMaxFiles:     10,
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	// Auto-generate based on environment
	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
