package components

import (
	"vip-discount/internal/handler"
	"vip-discount/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDiscountHandler,
	),
	fx.Invoke(handler.NewRouter),
)
