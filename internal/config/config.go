package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	MongoURL string
	DBName   string

	ConnectAttempts int
	ConnectDelay    time.Duration

	SessionTTL   time.Duration
	CookieSecure bool

	CORSAllowedOrigins []string
}

// Load reads configuration from the environment, picking up a .env file when
// one is present.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		MongoURL: getEnv("MONGODB_URL", "mongodb://localhost:27017/organic-marketplace"),
		DBName:   getEnv("MONGODB_DB", "organic-marketplace"),

		ConnectAttempts: getEnvInt("DB_CONNECT_ATTEMPTS", 5),
		ConnectDelay:    getEnvDuration("DB_CONNECT_DELAY", 5*time.Second),

		SessionTTL:   getEnvDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure: getEnvBool("COOKIE_SECURE", false),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
