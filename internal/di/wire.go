//go:build wireinject
// +build wireinject

package di

import (
	"AdsPull/pkg/config"
	"AdsPull/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideHTTPClient,

		// Vendor sources
		ProvideChannelFeeds,
		ProvideOrderSource,

		// Infrastructure
		ProvideCacheService,
		ProvideReportCache,
		ProvideReportPublisher,

		// Use case and HTTP surface
		ProvideReportUseCase,
		ProvideHandler,

		ProvideApp,
	)
	return &server.App{}, nil
}
