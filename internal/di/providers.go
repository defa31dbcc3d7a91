package di

import (
	"github.com/sajee05/effortless-time-tracker/internal/cache"
	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/filestore"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
	"github.com/sajee05/effortless-time-tracker/internal/metrics"
	"github.com/sajee05/effortless-time-tracker/internal/repository/sqlite"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

// provideLogger opens the process logger; teardown closes the log file.
func provideLogger(conf *config.Config) (logging.Logger, func(), error) {
	logger, err := logging.NewLogProvider(conf)
	if err != nil {
		return nil, nil, err
	}
	return logger, logger.Close, nil
}

// provideRepository opens the SQLite store at the configured path and runs
// pending migrations.
func provideRepository(conf *config.Config) (sqlite.Repository, func(), error) {
	repo, err := sqlite.New(conf.DatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return repo, func() { _ = repo.Close() }, nil
}

// provideCache wraps the snapshot cache with the metrics decorator so hit
// rates show up on /metrics when both are enabled.
func provideCache(conf *config.Config, logger logging.Logger, m metrics.Provider) cache.Provider {
	return cache.NewMetricsCache(cache.NewCacheProvider(conf, logger), m)
}

// provideFileStore assembles the zstd-backed backup store.
func provideFileStore(logger logging.Logger) (*filestore.Store, func(), error) {
	compressor, err := filestore.NewZstdCompressor()
	if err != nil {
		return nil, nil, err
	}
	store := filestore.NewStore(compressor, logger)
	return store, store.Close, nil
}

func provideRewardsService(aggregation services.AggregationService, conf *config.Config, logger logging.Logger) services.RewardsService {
	return services.NewRewardsService(aggregation, conf.RewardsPath(), logger)
}

func provideTransferService(repo sqlite.Repository, store *filestore.Store, conf *config.Config, logger logging.Logger) services.TransferService {
	return services.NewTransferService(repo, store, conf.BackupDir(), logger)
}

func provideServiceContainer(
	sessions services.SessionService,
	aggregation services.AggregationService,
	rewards services.RewardsService,
	timer services.TimerService,
	transfer services.TransferService,
) *services.ServiceContainer {
	return &services.ServiceContainer{
		Sessions:    sessions,
		Aggregation: aggregation,
		Rewards:     rewards,
		Timer:       timer,
		Transfer:    transfer,
	}
}
