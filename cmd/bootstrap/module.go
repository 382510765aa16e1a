package bootstrap

import (
	"vip-discount/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	UseCaseAndHandlerModules(),
)

// UseCaseAndHandlerModules is everything below configuration and logging.
func UseCaseAndHandlerModules() fx.Option {
	return fx.Options(
		components.UseCaseModule,
		components.HandlerModule,
	)
}
