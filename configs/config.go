package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	PostgresURI        string
	RedisURI           string
	FrontendURL        string
	R2                 R2
	SecretKey          string
	CookieName         string
	N8NWebhookURL      string
	Port               string
	LogLevel           string
	AdminEmails        []string

	// Location is the zone "today" is computed in when validating themes.
	Location          *time.Location
	SyncSchedule      string
	CalendarCacheTTL  time.Duration
	WorkerConcurrency int
}

func LoadConfig() *Config {
	return &Config{
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", "http://localhost:3000/login/callback"),
		PostgresURI:        getEnv("POSTGRES_URI", ""),
		RedisURI:           getEnv("REDIS_URI", "localhost:6379"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:         getEnv("SECRET_KEY", ""),
		CookieName:        getEnv("COOKIE_NAME", "planner_session"),
		N8NWebhookURL:     getEnv("N8N_WEBHOOK_URL", ""),
		Port:              getEnv("PORT", "3000"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AdminEmails:       getList("ADMIN_EMAILS"),
		Location:          getLocation("PLANNER_TIMEZONE", time.UTC),
		SyncSchedule:      getEnv("SYNC_SCHEDULE", "@every 01h00m00s"),
		CalendarCacheTTL:  getDuration("CALENDAR_CACHE_TTL", 5*time.Minute),
		WorkerConcurrency: getInt("WORKER_CONCURRENCY", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getLocation(key string, defaultValue *time.Location) *time.Location {
	name := os.Getenv(key)
	if name == "" {
		return defaultValue
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, using default", "key", key, "value", name, "error", err)
		return defaultValue
	}
	return loc
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration, using default", "key", key, "value", value, "error", err)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

// getList splits a comma separated variable, dropping blanks.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
