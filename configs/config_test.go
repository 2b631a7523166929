package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PLANNER_TIMEZONE", "CALENDAR_CACHE_TTL", "PORT", "WORKER_CONCURRENCY", "SYNC_SCHEDULE"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 5*time.Minute, cfg.CalendarCacheTTL)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 10, cfg.WorkerConcurrency)
	assert.Equal(t, "@every 01h00m00s", cfg.SyncSchedule)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PLANNER_TIMEZONE", "America/Bogota")
	t.Setenv("CALENDAR_CACHE_TTL", "90s")
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.example.com/webhook")
	t.Setenv("R2_BUCKET_NAME", "content")
	t.Setenv("WORKER_CONCURRENCY", "3")
	t.Setenv("ADMIN_EMAILS", "ana@example.com, ,ops@example.com")

	cfg := LoadConfig()
	require.NotNil(t, cfg.Location)
	assert.Equal(t, "America/Bogota", cfg.Location.String())
	assert.Equal(t, 90*time.Second, cfg.CalendarCacheTTL)
	assert.Equal(t, "https://n8n.example.com/webhook", cfg.N8NWebhookURL)
	assert.Equal(t, "content", cfg.R2.BucketName)
	assert.Equal(t, 3, cfg.WorkerConcurrency)
	assert.Equal(t, []string{"ana@example.com", "ops@example.com"}, cfg.AdminEmails)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PLANNER_TIMEZONE", "Mars/Olympus")
	t.Setenv("CALENDAR_CACHE_TTL", "soon")
	t.Setenv("WORKER_CONCURRENCY", "-2")

	cfg := LoadConfig()
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, 5*time.Minute, cfg.CalendarCacheTTL)
	assert.Equal(t, 10, cfg.WorkerConcurrency)
}
