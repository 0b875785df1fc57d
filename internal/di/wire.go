//go:build wireinject
// +build wireinject

package di

import (
	"mockshot/pkg/config"
	"mockshot/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Services
		ProvideQuoteClient,
		ProvideSessionStore,
		ProvideSchemaResolver,
		ProvideRenderer,

		// Capture stack
		ProvideBrowser,
		ProvidePipeline,
		ProvideEmbedUpdater,

		// Form state and transport
		ProvideDraftController,
		ProvideHub,
		ProvideGeneratorHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
