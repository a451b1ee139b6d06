package config

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port int

	// Empty DBURL means the API falls back to the in-memory user store.
	DBURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	QueueName     string

	AllowedOrigins []string
	OTELEndpoint   string

	// Standalone /metrics listener for processes without an HTTP surface
	// of their own (the worker).
	MetricsPort int

	// Gateway side.
	WebPort    int
	APIBaseURL string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Env:            getEnv("APP_ENV", "dev"),
		Port:           getEnvInt("PORT", 5254),
		DBURL:          dbURL(),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		QueueName:      getEnv("QUEUE_NAME", "taskflow:jobs"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		OTELEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		MetricsPort:    getEnvInt("METRICS_PORT", 9091),
		WebPort:        getEnvInt("WEB_PORT", 3000),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5254/api"),
	}
}

// dbURL prefers an explicit DATABASE_URL and otherwise assembles one from the
// DB_* variables. No DB_HOST means no database at all.
func dbURL() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}

	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "taskflow")
	pass := getEnv("DB_PASSWORD", "taskflow")
	name := getEnv("DB_NAME", "taskflow")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)
		if err != nil {
			return fallback
		}

		return num
	}

	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
