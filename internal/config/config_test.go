package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"OPENAI_BASE_URL", "FEEDBACK_MODEL", "FEEDBACK_TEMPERATURE", "FEEDBACK_TIMEOUT", "SERVER_HOST", "SERVER_HTTP_PORT", "SERVER_ENV"} {
		// Setenv restores the original value on cleanup.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, "google/gemini-2.0-flash-001", cfg.FeedbackModel)
	assert.InDelta(t, 0.7, cfg.FeedbackTemperature, 0.0001)
	assert.Equal(t, 30*time.Second, cfg.FeedbackTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddress())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_HTTP_PORT", "9090")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("FEEDBACK_TIMEOUT", "12s")
	t.Setenv("FEEDBACK_MODEL", "openai/gpt-4o-mini")
	t.Setenv("FEEDBACK_TEMPERATURE", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 12*time.Second, cfg.FeedbackTimeout)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.FeedbackModel)
	assert.Zero(t, cfg.FeedbackTemperature)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("FEEDBACK_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
