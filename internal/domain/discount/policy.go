package discount

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// MinimumPurchaseAmount is the threshold below which no tier receives a discount.
	MinimumPurchaseAmount = 100
	// VIPDiscountRate is the fraction of the purchase amount taken off for VIP buyers.
	VIPDiscountRate = 0.20
)

var (
	ErrInvalidMinimumPurchase = errors.New("minimum purchase amount cannot be negative")
	ErrInvalidDiscountRate    = errors.New("discount rate must be between 0 and 1")
)

type Policy struct {
	MinimumPurchaseAmount decimal.Decimal
	VIPDiscountRate       decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		MinimumPurchaseAmount: decimal.NewFromInt(MinimumPurchaseAmount),
		VIPDiscountRate:       decimal.NewFromFloat(VIPDiscountRate),
	}
}

func NewPolicy(minimumPurchaseAmount, vipDiscountRate float64) (Policy, error) {
	p := Policy{
		MinimumPurchaseAmount: decimal.NewFromFloat(minimumPurchaseAmount),
		VIPDiscountRate:       decimal.NewFromFloat(vipDiscountRate),
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

func (p Policy) Validate() error {
	if p.MinimumPurchaseAmount.IsNegative() {
		return ErrInvalidMinimumPurchase
	}
	if p.VIPDiscountRate.IsNegative() || p.VIPDiscountRate.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidDiscountRate
	}
	return nil
}
