package discount

import (
	"vip-discount/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

// Result is the priced outcome of one calculation.
// ErrorMessage is set iff Success is false; FinalPrice and DiscountAmount are then zero.
type Result struct {
	Success        bool
	FinalPrice     decimal.Decimal
	DiscountAmount decimal.Decimal
	ErrorMessage   *string
	Err            error
}

func newFailedResult(err error) Result {
	return Result{
		Success:        false,
		FinalPrice:     decimal.Zero,
		DiscountAmount: decimal.Zero,
		ErrorMessage:   ptr.To(err.Error()),
		Err:            err,
	}
}

func newFullPriceResult(amount decimal.Decimal) Result {
	return Result{
		Success:        true,
		FinalPrice:     amount,
		DiscountAmount: decimal.Zero,
	}
}

func newDiscountedResult(finalPrice, discountAmount decimal.Decimal) Result {
	return Result{
		Success:        true,
		FinalPrice:     finalPrice,
		DiscountAmount: discountAmount,
	}
}

func (r Result) Message() string {
	return ptr.Deref(r.ErrorMessage)
}
