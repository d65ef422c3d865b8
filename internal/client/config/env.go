package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/driverhelper/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv loads the dotenv file, then overlays every DH_* variable that is
// set. Variables already present in the process environment win over the
// file. A missing default file is ignored; an explicit -env that cannot be
// read panics.
func parseEnv(cfg *Config) {
	path := flagx.EnvFileFlags()
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	str("DH_REMOTE_URL", &cfg.Remote.URL)
	str("DH_REMOTE_KEY", &cfg.Remote.Key)
	str("DH_LOCAL_DB", &cfg.LocalDBPath)
	str("DH_LOG_LEVEL", &cfg.LogLevel)
	str("DH_SENTRY_DSN", &cfg.SentryDSN)
	str("DH_METRICS_ADDR", &cfg.MetricsAddr)
	str("DH_S3_ENDPOINT", &cfg.Media.Endpoint)
	str("DH_S3_REGION", &cfg.Media.Region)
	str("DH_S3_BUCKET", &cfg.Media.Bucket)
	str("DH_S3_ACCESS_KEY", &cfg.Media.AccessKey)
	str("DH_S3_SECRET_KEY", &cfg.Media.SecretKey)
}
