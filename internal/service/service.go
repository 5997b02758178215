package service

import (
	"lensboard/internal/service/generations"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	NewAuthService,
	generations.NewLangfuseService,
)
