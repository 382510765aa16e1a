package components

import (
	"vip-discount/internal/domain/discount"
	"vip-discount/internal/pkg/clock"
	"vip-discount/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		discount.NewCalculator,
		fx.As(new(discount.Calculator)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDiscountQueries,
	),
)
