// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/i18n"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath       = "database.path"
	KeyLogLevel           = "logging.level"
	KeyLogFormat          = "logging.format"
	KeyLogFile            = "logging.file"
	KeyLanguage           = "language"
	KeyTheme              = "ui.theme"
	KeySessionSecret      = "auth.session_secret"
	KeySessionTTL         = "auth.session_ttl"
	KeyGoogleClientID     = "auth.google.client_id"
	KeyGoogleClientSecret = "auth.google.client_secret"
	KeyGoogleRedirectURL  = "auth.google.redirect_url"
)

const (
	defaultDataDir    = "~/.local/share/budget"
	defaultSessionTTL = 720 * time.Hour
)

// Config is the typed view of the settings.
type Config struct {
	DatabasePath string
	LogLevel     string
	LogFormat    string
	LogFile      string
	Language     string
	Theme        string
	Auth         AuthConfig
}

// AuthConfig configures accounts and sessions.
type AuthConfig struct {
	SessionSecret string
	Google        GoogleConfig
	SessionTTL    time.Duration
}

// GoogleConfig holds the OAuth2 client used for Google sign-in.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether Google sign-in can be offered.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, filepath.Join(defaultDataDir, "budget.db"))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, filepath.Join(defaultDataDir, "budget.log"))
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeySessionTTL, defaultSessionTTL)
}

// Load reads the configuration from v. Google credentials fall back to
// the GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		LogFile:      ExpandPath(v.GetString(KeyLogFile)),
		Language:     v.GetString(KeyLanguage),
		Theme:        v.GetString(KeyTheme),
		Auth: AuthConfig{
			SessionSecret: v.GetString(KeySessionSecret),
			SessionTTL:    v.GetDuration(KeySessionTTL),
			Google: GoogleConfig{
				ClientID:     v.GetString(KeyGoogleClientID),
				ClientSecret: v.GetString(KeyGoogleClientSecret),
				RedirectURL:  v.GetString(KeyGoogleRedirectURL),
			},
		},
	}

	if cfg.Auth.Google.ClientID == "" {
		cfg.Auth.Google.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if cfg.Auth.Google.ClientSecret == "" {
		cfg.Auth.Google.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: %s is empty", common.ErrInvalidConfig, KeyDatabasePath)
	}
	if _, err := common.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.LogFormat)
	}
	if c.Language != "" && !i18n.Valid(c.Language) {
		return fmt.Errorf("%w: language %q", common.ErrInvalidConfig, c.Language)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeySessionTTL)
	}
	if (c.Auth.Google.ClientID == "") != (c.Auth.Google.ClientSecret == "") {
		return fmt.Errorf("%w: google client id and secret must be set together", common.ErrInvalidConfig)
	}
	return nil
}
