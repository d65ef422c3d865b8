package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/driverhelper/internal/flagx"
	"github.com/dmitrijs2005/driverhelper/internal/timex"
)

// JsonS3Config is the "s3" object of the config file.
type JsonS3Config struct {
	Endpoint  string `json:"endpoint"`
	Region    string `json:"region"`
	Bucket    string `json:"bucket"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	PathStyle *bool  `json:"path_style"`
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file override the current Config.
type JsonConfig struct {
	RemoteURL           *string         `json:"remote_url"`
	RemoteKey           *string         `json:"remote_key"`
	SessionTTL          *timex.Duration `json:"session_ttl"`
	MigrateRemote       *bool           `json:"migrate_remote"`
	LocalDB             *string         `json:"local_db"`
	KeyPrefix           *string         `json:"key_prefix"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	LogLevel            *string         `json:"log_level"`
	MetricsAddr         *string         `json:"metrics_addr"`
	SentryDSN           *string         `json:"sentry_dsn"`
	S3                  *JsonS3Config   `json:"s3"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Read or decode failures panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.Remote.URL, jc.RemoteURL)
	setString(&cfg.Remote.Key, jc.RemoteKey)
	if jc.SessionTTL != nil {
		cfg.Remote.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.MigrateRemote != nil {
		cfg.Remote.Migrate = *jc.MigrateRemote
	}
	setString(&cfg.LocalDBPath, jc.LocalDB)
	setString(&cfg.KeyPrefix, jc.KeyPrefix)
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.MetricsAddr, jc.MetricsAddr)
	setString(&cfg.SentryDSN, jc.SentryDSN)

	if s3 := jc.S3; s3 != nil {
		setNonEmpty(&cfg.Media.Endpoint, s3.Endpoint)
		setNonEmpty(&cfg.Media.Region, s3.Region)
		setNonEmpty(&cfg.Media.Bucket, s3.Bucket)
		setNonEmpty(&cfg.Media.AccessKey, s3.AccessKey)
		setNonEmpty(&cfg.Media.SecretKey, s3.SecretKey)
		if s3.PathStyle != nil {
			cfg.Media.PathStyle = *s3.PathStyle
		}
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setNonEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
