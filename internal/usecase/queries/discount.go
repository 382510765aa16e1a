package queries

import (
	"context"
	"log/slog"

	"vip-discount/internal/domain/discount"
	"vip-discount/internal/domain/purchase"
	"vip-discount/internal/domain/user"
	"vip-discount/internal/pkg/clock"
	"vip-discount/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type QuoteParams struct {
	UserID   string
	UserType string
	Amount   decimal.Decimal
	Currency string
}

type DiscountQueries interface {
	Quote(ctx context.Context, params QuoteParams) (*DiscountQuoteView, error)
}

type discountQueriesImpl struct {
	calculator discount.Calculator
	clock      clock.Clock
	logger     *slog.Logger
}

func NewDiscountQueries(calculator discount.Calculator, clk clock.Clock, logger *slog.Logger) DiscountQueries {
	if logger == nil {
		logger = slog.Default()
	}
	return &discountQueriesImpl{
		calculator: calculator,
		clock:      clk,
		logger:     logger,
	}
}

// Quote returns an error only for input that cannot be turned into domain values.
// A rejected purchase is a successful call whose view has Success == false.
func (q *discountQueriesImpl) Quote(ctx context.Context, params QuoteParams) (*DiscountQuoteView, error) {
	buyer, p, err := toDomain(params)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "quote discount"), errs.ErrInvalidQuoteInput)
	}

	result := q.calculator.Calculate(buyer, p)

	view := &DiscountQuoteView{}
	if err := copier.Copy(view, &result); err != nil {
		return nil, errs.Wrap(err, "copy discount result")
	}
	view.UserID = buyer.ID().Value()
	view.UserType = buyer.Type().String()
	view.Amount = p.Amount().Decimal()
	view.Currency = p.Currency().String()
	view.QuotedAt = q.clock.Now()

	attrs := []slog.Attr{
		slog.String("user_id", view.UserID),
		slog.String("user_type", view.UserType),
		slog.String("amount", view.Amount.String()),
		slog.String("currency", view.Currency),
		slog.Bool("success", view.Success),
		slog.String("discount_amount", view.DiscountAmount.String()),
	}
	level := slog.LevelInfo
	if !result.Success {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("reason", result.Message()))
	}
	q.logger.LogAttrs(ctx, level, "Discount quoted", attrs...)

	return view, nil
}

func toDomain(params QuoteParams) (*user.User, purchase.Purchase, error) {
	id, err := user.NewID(params.UserID)
	if err != nil {
		return nil, purchase.Purchase{}, errs.Mark(err, errs.ErrInvalidUserID)
	}

	userType, err := user.NewType(params.UserType)
	if err != nil {
		return nil, purchase.Purchase{}, errs.WithHint(
			errs.Mark(err, errs.ErrInvalidUserType),
			"user type must be VIP or NORMAL",
		)
	}

	currency, err := purchase.NewCurrency(params.Currency)
	if err != nil {
		return nil, purchase.Purchase{}, errs.WithHint(
			errs.Mark(err, errs.ErrInvalidCurrency),
			"currency must be a three letter code",
		)
	}

	return user.NewUser(id, userType), purchase.NewPurchase(purchase.NewMoney(params.Amount), currency), nil
}
