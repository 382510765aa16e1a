package discount

import (
	"errors"

	"vip-discount/internal/domain/purchase"
	"vip-discount/internal/domain/user"
)

var ErrInvalidPurchaseAmount = errors.New("Invalid purchase amount") //nolint:staticcheck // surfaced verbatim to callers

type Calculator interface {
	Calculate(u *user.User, p purchase.Purchase) Result
}

type DefaultCalculator struct {
	policy Policy
}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{
		policy: DefaultPolicy(),
	}
}

func NewCalculator(policy Policy) (*DefaultCalculator, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &DefaultCalculator{policy: policy}, nil
}

func (c *DefaultCalculator) Policy() Policy {
	return c.policy
}

// Calculate applies the rules in order; the first one that matches decides the result.
// The threshold check runs before the tier check, so a VIP below the threshold pays full price.
func (c *DefaultCalculator) Calculate(u *user.User, p purchase.Purchase) Result {
	amount := p.Amount()

	if amount.IsNegative() {
		return newFailedResult(ErrInvalidPurchaseAmount)
	}

	if amount.Decimal().LessThan(c.policy.MinimumPurchaseAmount) {
		return newFullPriceResult(amount.Decimal())
	}

	if u.IsVIP() {
		discountAmount := amount.MulRate(c.policy.VIPDiscountRate)
		return newDiscountedResult(amount.Sub(discountAmount).Decimal(), discountAmount.Decimal())
	}

	return newFullPriceResult(amount.Decimal())
}
