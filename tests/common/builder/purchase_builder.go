//go:build unit || e2e

package builder

import (
	"vip-discount/internal/domain/purchase"
	reqdto "vip-discount/internal/handler/dto/request"
	"vip-discount/internal/pkg/ptr"
	"vip-discount/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PurchaseBuilder struct {
	Amount   decimal.Decimal
	Currency string
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		Amount:   decimal.NewFromInt(1000),
		Currency: "USD",
	}
}

func (p *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(p)
	return p
}

func (p *PurchaseBuilder) BuildDomain() purchase.Purchase {
	return purchase.NewPurchase(purchase.NewMoney(p.Amount), purchase.Currency(p.Currency))
}

func (p *PurchaseBuilder) BuildQuoteParams(u *UserBuilder) queries.QuoteParams {
	return queries.QuoteParams{
		UserID:   u.ID,
		UserType: u.Type,
		Amount:   p.Amount,
		Currency: p.Currency,
	}
}

func (p *PurchaseBuilder) BuildQuoteRequestDTO(u *UserBuilder) reqdto.QuoteDiscountRequest {
	return reqdto.QuoteDiscountRequest{
		UserID:   u.ID,
		UserType: u.Type,
		Amount:   ptr.To(p.Amount.InexactFloat64()),
		Currency: ptr.To(p.Currency),
	}
}

// Fluent builder methods
func (p *PurchaseBuilder) WithAmount(amount float64) *PurchaseBuilder {
	p.Amount = decimal.NewFromFloat(amount)
	return p
}

func (p *PurchaseBuilder) WithCurrency(currency string) *PurchaseBuilder {
	p.Currency = currency
	return p
}
