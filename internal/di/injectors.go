//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"github.com/sajee05/effortless-time-tracker/internal/api"
	"github.com/sajee05/effortless-time-tracker/internal/audio"
	"github.com/sajee05/effortless-time-tracker/internal/cli"
	"github.com/sajee05/effortless-time-tracker/internal/config"
	"github.com/sajee05/effortless-time-tracker/internal/metrics"
	"github.com/sajee05/effortless-time-tracker/internal/server"
	"github.com/sajee05/effortless-time-tracker/internal/services"
)

// InitApp assembles the full command tree from loaded configuration. The
// returned cleanup closes the database, the backup store and the log file.
func InitApp(conf *config.Config) (*cli.RootCommand, func(), error) {

	wire.Build(
		provideLogger,
		provideRepository,
		metrics.NewMetricsProvider,
		provideCache,
		audio.NewPlayer,
		provideFileStore,

		services.NewSessionService,
		services.NewAggregationService,
		provideRewardsService,
		services.NewTimerService,
		provideTransferService,
		provideServiceContainer,

		api.New,
		server.New,
		cli.NewRootCommand,
	)

	return nil, nil, nil
}
