package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	GenerateURL string
	AITimeout   time.Duration
	SessionTTL  time.Duration
}

// Load reads an optional .env file, then the environment, falling back to
// defaults that work in the development compose setup.
func Load() Config {
	// best-effort; absence of a .env file is normal
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "3000"),
		GenerateURL: getEnv("GENERATE_URL", "http://ai-service:8000/api/generate"),
		AITimeout:   getDuration("AI_TIMEOUT", 60*time.Second),
		SessionTTL:  getDuration("SESSION_TTL", 2*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
