package handler

import "github.com/google/wire"

// ProviderSet Provider 对象集合
var ProviderSet = wire.NewSet(
	NewHealthHandler,
	NewAuthHandler,
	NewDashboardHandler,
	NewTracesHandler,
)
