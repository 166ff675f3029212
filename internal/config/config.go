package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all process configuration. It is loaded once at startup and
// never mutated afterwards; request handling only reads it through the
// components it was injected into.
type Config struct {
	Env          string
	Port         string
	MockMode     bool
	GeminiAPIKey string
	GeminiModel  string
	CloudRunURL  string
	ExtraOrigins []string

	// Rate limiting knobs for the /api/recommend endpoint.
	RequestsPerSecond float64
	Burst             int
	DailyQuota        int64
}

// Load reads configuration from environment variables. A missing
// GEMINI_API_KEY is deliberately not an error here: the process still
// serves health checks and mock traffic, and the live gateway reports the
// missing credential at call time.
func Load() *Config {
	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "1"), 64)
	if err != nil || rps <= 0 {
		rps = 1
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "3"))
	if err != nil || burst < 1 {
		burst = 3
	}
	quota, err := strconv.ParseInt(getEnv("DAILY_QUOTA", "500"), 10, 64)
	if err != nil || quota < 1 {
		quota = 500
	}

	var extraOrigins []string
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		extraOrigins = strings.Split(raw, ",")
	}

	return &Config{
		Env:               os.Getenv("ENV"),
		Port:              getEnv("PORT", "8080"),
		MockMode:          strings.ToLower(getEnv("MOCK_MODE", "true")) == "true",
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		CloudRunURL:       os.Getenv("CLOUD_RUN_URL"),
		ExtraOrigins:      extraOrigins,
		RequestsPerSecond: rps,
		Burst:             burst,
		DailyQuota:        quota,
	}
}

// MaskedAPIKey returns a short masked prefix of the credential, safe for
// logs. The full key must never be logged or returned to clients.
func (c *Config) MaskedAPIKey() string {
	if c.GeminiAPIKey == "" {
		return "(unset)"
	}
	if len(c.GeminiAPIKey) <= 4 {
		return "****"
	}
	return c.GeminiAPIKey[:4] + "****"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
