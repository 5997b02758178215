package middleware

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	NewTraceEntry,
	NewCors,
	NewLogger,
	NewRecovery,
	NewAuth,
)
