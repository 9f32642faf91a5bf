package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Blank out everything Load reads so ambient variables cannot leak
	// into the assertions.
	for _, key := range []string{
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"SERPAPI_KEY", "SERPAPI_BASE_URL", "SERPAPI_TIMEOUT",
		"GROQ_API_KEY", "GROQ_BASE_URL", "GROQ_MODEL", "GROQ_TIMEOUT",
		"METRICS_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)

	assert.Empty(t, cfg.SerpAPI.APIKey)
	assert.Equal(t, "https://serpapi.com", cfg.SerpAPI.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.SerpAPI.Timeout)

	assert.Empty(t, cfg.Groq.APIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Groq.Model)
	assert.Equal(t, 60*time.Second, cfg.Groq.Timeout)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "5")
	t.Setenv("SERVER_WRITE_TIMEOUT", "15")
	t.Setenv("SERPAPI_KEY", "serp-secret")
	t.Setenv("SERPAPI_BASE_URL", "http://localhost:9001")
	t.Setenv("SERPAPI_TIMEOUT", "3")
	t.Setenv("GROQ_API_KEY", "groq-secret")
	t.Setenv("GROQ_BASE_URL", "http://localhost:9002/openai/v1")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("GROQ_TIMEOUT", "120")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)

	assert.Equal(t, "serp-secret", cfg.SerpAPI.APIKey)
	assert.Equal(t, "http://localhost:9001", cfg.SerpAPI.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.SerpAPI.Timeout)

	assert.Equal(t, "groq-secret", cfg.Groq.APIKey)
	assert.Equal(t, "http://localhost:9002/openai/v1", cfg.Groq.BaseURL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.Equal(t, 120*time.Second, cfg.Groq.Timeout)

	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "debug", cfg.Logger.Level)
}
