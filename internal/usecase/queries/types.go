package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountQuoteView represents the priced outcome of one purchase as returned to callers
type DiscountQuoteView struct {
	UserID         string          `json:"user_id"`
	UserType       string          `json:"user_type"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Success        bool            `json:"success"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	QuotedAt       time.Time       `json:"quoted_at"`
}
