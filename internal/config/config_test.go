package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "https://sensorika.uz", cfg.BaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Mozilla/5.0", cfg.UserAgent)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BASE_URL", "http://localhost:9999")
	t.Setenv("PORT", "9000")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "3")

	cfg := Load()
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
}

func TestLoadIgnoresBadTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT_SECONDS", "soon")
	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
}
