package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", strings.Repeat("s", 32))

	cfg, err := LoadApp()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:3001", cfg.StoreURL)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadAppRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := LoadApp()
	assert.Error(t, err)
}

func TestLoadAppOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", strings.Repeat("s", 40))
	t.Setenv("PORT", "9999")
	t.Setenv("STORE_URL", "http://store:4000")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadApp()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "http://store:4000", cfg.StoreURL)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadAppRejectsBadPort(t *testing.T) {
	t.Setenv("SESSION_SECRET", strings.Repeat("s", 32))
	t.Setenv("PORT", "not-a-number")

	_, err := LoadApp()
	assert.Error(t, err)
}

func TestLoadStoreDefaults(t *testing.T) {
	cfg, err := LoadStore()
	require.NoError(t, err)
	assert.Equal(t, 3001, cfg.Port)
	assert.Equal(t, "./store.db", cfg.DatabasePath)
}
