package bootstrap

import (
	"vip-discount/internal/domain/discount"
	"vip-discount/internal/pkg/config"
	"vip-discount/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewDiscountPolicy,
	),
)

func NewDiscountPolicy(cfg config.Config) (discount.Policy, error) {
	policy, err := discount.NewPolicy(cfg.Discount.MinimumPurchaseAmount, cfg.Discount.VIPRate)
	if err != nil {
		return discount.Policy{}, errs.Mark(errs.Wrap(err, "load discount policy"), errs.ErrInvalidDiscountPolicy)
	}
	return policy, nil
}
