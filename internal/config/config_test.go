package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("MOCK_MODE", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("DAILY_QUOTA", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.MockMode, "mock mode defaults on")
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Nil(t, cfg.ExtraOrigins)
	assert.Equal(t, 1.0, cfg.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Burst)
	assert.Equal(t, int64(500), cfg.DailyQuota)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MOCK_MODE", "FALSE")
	t.Setenv("GEMINI_API_KEY", "abcdef123456")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("DAILY_QUOTA", "42")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.MockMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.ExtraOrigins)
	assert.Equal(t, 2.5, cfg.RequestsPerSecond)
	assert.Equal(t, int64(42), cfg.DailyQuota)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("RATE_LIMIT_BURST", "-2")
	t.Setenv("DAILY_QUOTA", "0")

	cfg := Load()

	assert.Equal(t, 1.0, cfg.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Burst)
	assert.Equal(t, int64(500), cfg.DailyQuota)
}

func TestMaskedAPIKey(t *testing.T) {
	assert.Equal(t, "(unset)", (&Config{}).MaskedAPIKey())
	assert.Equal(t, "****", (&Config{GeminiAPIKey: "abc"}).MaskedAPIKey())
	assert.Equal(t, "abcd****", (&Config{GeminiAPIKey: "abcdef123456"}).MaskedAPIKey())

	masked := (&Config{GeminiAPIKey: "abcdef123456"}).MaskedAPIKey()
	assert.NotContains(t, masked, "ef123456")
}
