package response

import (
	"time"

	"vip-discount/internal/usecase/queries"
)

type DiscountQuoteResponse struct {
	UserID         string    `json:"userId"`
	UserType       string    `json:"userType"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Success        bool      `json:"success"`
	FinalPrice     float64   `json:"finalPrice"`
	DiscountAmount float64   `json:"discountAmount"`
	ErrorMessage   *string   `json:"errorMessage,omitempty"`
	QuotedAt       time.Time `json:"quotedAt"`
}

func FromDiscountQuoteView(v *queries.DiscountQuoteView) *DiscountQuoteResponse {
	return &DiscountQuoteResponse{
		UserID:         v.UserID,
		UserType:       v.UserType,
		Amount:         v.Amount.InexactFloat64(),
		Currency:       v.Currency,
		Success:        v.Success,
		FinalPrice:     v.FinalPrice.InexactFloat64(),
		DiscountAmount: v.DiscountAmount.InexactFloat64(),
		ErrorMessage:   v.ErrorMessage,
		QuotedAt:       v.QuotedAt,
	}
}

func (r *DiscountQuoteResponse) ErrorMessageOr(fallback string) string {
	if r.ErrorMessage == nil || *r.ErrorMessage == "" {
		return fallback
	}
	return *r.ErrorMessage
}
