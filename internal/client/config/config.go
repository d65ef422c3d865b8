package config

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/common"
	"github.com/dmitrijs2005/driverhelper/internal/media"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
)

// RemoteConfig locates the hosted backend.
type RemoteConfig struct {
	URL        string
	Key        string
	SessionTTL time.Duration
	// Migrate applies the remote schema at startup.
	Migrate bool
}

// IsConfigured reports whether both URL and key are present and neither is
// a placeholder left over from a template.
func (r RemoteConfig) IsConfigured() bool {
	if r.URL == "" || r.Key == "" {
		return false
	}
	if strings.Contains(r.URL, common.PlaceholderURLMarker) {
		return false
	}
	return r.Key != common.PlaceholderKey
}

// Options converts r into remote client options.
func (r RemoteConfig) Options() remote.Options {
	return remote.Options{URL: r.URL, Key: r.Key, SessionTTL: r.SessionTTL, Migrate: r.Migrate}
}

// Config holds runtime settings for the CLI.
type Config struct {
	Remote RemoteConfig

	LocalDBPath string
	KeyPrefix   string

	OnlineCheckInterval time.Duration

	LogLevel    string
	MetricsAddr string
	SentryDSN   string

	Media media.Config
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Remote.SessionTTL = remote.DefaultSessionTTL
	c.LocalDBPath = "driverhelper.db"
	c.KeyPrefix = common.LocalKeyPrefix
	c.OnlineCheckInterval = 5 * time.Second
	c.LogLevel = "info"
	c.Media.Region = "us-east-1"
	c.Media.PathStyle = true
	c.Media.URLExpiry = media.DefaultURLExpiry
}

// LoadConfig applies defaults, then the environment, JSON and flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
