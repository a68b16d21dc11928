package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 15.0, cfg.Intent.TrustThreshold)
	assert.Equal(t, 20, cfg.Intent.MaxKeywordsPerIntent)
	assert.Equal(t, 2, cfg.Intent.MinKeywordLength)
	assert.Equal(t, 30, cfg.Intent.MaxKeywordLength)
	assert.Equal(t, 0.1, cfg.Intent.LearningRate)
	assert.Equal(t, 0.3, cfg.Intent.UpdateThreshold)
	assert.Equal(t, "monday", cfg.Intent.WeekStart)
	assert.Equal(t, time.Hour, cfg.Mining.Interval)
	assert.Equal(t, 7*24*time.Hour, cfg.Mining.Lookback)
	assert.False(t, cfg.Mining.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("INTENT_TRUST_THRESHOLD", "12.5")
	t.Setenv("MINING_ENABLED", "true")
	t.Setenv("MINING_INTERVAL", "15m")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12.5, cfg.Intent.TrustThreshold)
	assert.True(t, cfg.Mining.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Mining.Interval)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("INTENT_MIN_KEYWORD_LENGTH", "40")

	_, err := Load()
	assert.Error(t, err)
}
