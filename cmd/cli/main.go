package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/driverhelper/internal/buildinfo"
	"github.com/dmitrijs2005/driverhelper/internal/client/cli"
	"github.com/dmitrijs2005/driverhelper/internal/client/config"
	"github.com/dmitrijs2005/driverhelper/internal/client/localstore"
	"github.com/dmitrijs2005/driverhelper/internal/client/services"
	"github.com/dmitrijs2005/driverhelper/internal/filex"
	"github.com/dmitrijs2005/driverhelper/internal/logging"
	"github.com/dmitrijs2005/driverhelper/internal/media"
	"github.com/dmitrijs2005/driverhelper/internal/remote"
	"github.com/dmitrijs2005/driverhelper/internal/telemetry"
	"github.com/fishy/errbatch"
)

const flushTimeout = 2 * time.Second

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.NewConsoleLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	dbPath, err := filex.EnsureParentDir(cfg.LocalDBPath)
	if err != nil {
		return err
	}
	db, err := localstore.InitDatabase(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	local := localstore.New(db, cfg.KeyPrefix)

	var rc remote.Client = remote.Unconfigured{}
	if cfg.Remote.IsConfigured() {
		pc, err := remote.Open(ctx, cfg.Remote.Options(), local)
		if err != nil {
			logger.Warn(ctx, "remote store unavailable, working locally", "error", err)
		} else {
			rc = pc
		}
	} else {
		logger.Info(ctx, "remote store not configured, working locally")
	}

	metrics := telemetry.NewMetrics()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Error(ctx, "metrics endpoint stopped", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	reporter, err := telemetry.NewSentryReporter(cfg.SentryDSN, buildinfo.Version)
	if err != nil {
		logger.Warn(ctx, "error reporting disabled", "error", err)
		reporter = telemetry.NopReporter{}
	}
	defer reporter.Flush(flushTimeout)

	data := services.New(services.Deps{
		Local:    local,
		Remote:   rc,
		Logger:   logger,
		Metrics:  metrics,
		Reporter: reporter,
		Media:    media.New(cfg.Media),
	})

	cli.NewApp(cfg, data, logger).Run(ctx)

	var batch errbatch.ErrBatch
	batch.Add(rc.Close())
	batch.Add(db.Close())
	return batch.Compile()
}
