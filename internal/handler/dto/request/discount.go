package request

import (
	"vip-discount/internal/pkg/patch"
	"vip-discount/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type QuoteDiscountRequest struct {
	UserID   string   `json:"userId" binding:"required"`
	UserType string   `json:"userType" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
	Currency *string  `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// ToParams falls back to defaultCurrency when the request omits one.
func (r QuoteDiscountRequest) ToParams(defaultCurrency string) queries.QuoteParams {
	return queries.QuoteParams{
		UserID:   r.UserID,
		UserType: r.UserType,
		Amount:   decimal.NewFromFloat(patch.Coalesce(r.Amount, 0)),
		Currency: patch.CoalesceString(r.Currency, defaultCurrency),
	}
}
