package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, []string{"es", "pt"}, cfg.Locale.SupportedLanguages)
	assert.Equal(t, []string{"USD", "BRL", "PYG"}, cfg.Locale.SupportedCurrencies)
	assert.Equal(t, 5, cfg.Uploads.MaxSizeMB)
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("SUPPORTED_CURRENCIES", "usd, eur")
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"USD", "EUR"}, cfg.Locale.SupportedCurrencies)
	assert.Equal(t, "EUR", cfg.Locale.DefaultCurrency)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, int64(-100123), cfg.Telegram.ChatID)
}

func TestNewConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad duration", key: "SESSION_TTL", val: "tomorrow"},
		{name: "unknown session store", key: "SESSION_STORE", val: "memcached"},
		{name: "redis store without address", key: "SESSION_STORE", val: "redis"},
		{name: "default language not supported", key: "DEFAULT_LANGUAGE", val: "en"},
		{name: "bad sampling ratio", key: "OTEL_SAMPLING_RATIO", val: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
