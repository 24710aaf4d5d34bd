package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, values map[string]any) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(newViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local/share/budget/budget.db"), cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 720*time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Auth.Google.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "env-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "env-secret")

	cfg, err := Load(newViper(t, map[string]any{
		KeyDatabasePath:   "/tmp/budget.db",
		KeyLanguage:       "it",
		KeySessionTTL:     "24h",
		KeyGoogleClientID: "cfg-id",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/budget.db", cfg.DatabasePath)
	assert.Equal(t, "it", cfg.Language)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "cfg-id", cfg.Auth.Google.ClientID)
	assert.Equal(t, "env-secret", cfg.Auth.Google.ClientSecret)
	assert.True(t, cfg.Auth.Google.Enabled())
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			DatabasePath: "/tmp/budget.db",
			LogLevel:     "info",
			LogFormat:    "console",
			Auth:         AuthConfig{SessionTTL: time.Hour},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty database path", mutate: func(c *Config) { c.DatabasePath = "" }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "bad language", mutate: func(c *Config) { c.Language = "fr" }},
		{name: "zero ttl", mutate: func(c *Config) { c.Auth.SessionTTL = 0 }},
		{name: "half google config", mutate: func(c *Config) { c.Auth.Google.ClientID = "id" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), common.ErrInvalidConfig)
		})
	}
}
