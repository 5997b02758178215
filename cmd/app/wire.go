//go:build wireinject
// +build wireinject

package main

import (
	"lensboard/config"
	"lensboard/internal/command"
	"lensboard/internal/cron"
	"lensboard/internal/fluentd"
	"lensboard/internal/handler"
	"lensboard/internal/middleware"
	"lensboard/internal/router"
	"lensboard/internal/service"
	"lensboard/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			fluentd.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			newHttpClient,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(command.ProviderSet))
}
