package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GENERATE_URL", "")
	t.Setenv("AI_TIMEOUT", "")
	t.Setenv("SESSION_TTL", "")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "http://ai-service:8000/api/generate", cfg.GenerateURL)
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GENERATE_URL", "http://localhost:9000/gen")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("SESSION_TTL", "30m")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:9000/gen", cfg.GenerateURL)
	assert.Equal(t, 5*time.Second, cfg.AITimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "soon")
	t.Setenv("SESSION_TTL", "")

	cfg := Load()
	assert.Equal(t, 60*time.Second, cfg.AITimeout)
}
