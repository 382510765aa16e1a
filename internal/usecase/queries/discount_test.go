//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"vip-discount/internal/domain/discount"
	"vip-discount/internal/domain/purchase"
	"vip-discount/internal/domain/user"
	"vip-discount/internal/pkg/clock"
	"vip-discount/internal/pkg/errs"
	"vip-discount/internal/usecase/queries"
	"vip-discount/tests/common/builder"
	discountmock "vip-discount/tests/mock/discount"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var quotedAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}

type DiscountQueriesTestSuite struct {
	suite.Suite
	logs    *bytes.Buffer
	queries queries.DiscountQueries
}

func (s *DiscountQueriesTestSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.queries = queries.NewDiscountQueries(discount.NewDefaultCalculator(), clock.NewMockClock(quotedAt), logger)
}

func TestDiscountQueriesSuite(t *testing.T) {
	suite.Run(t, new(DiscountQueriesTestSuite))
}

func (s *DiscountQueriesTestSuite) TestQuote_Scenarios() {
	msg := "Invalid purchase amount"

	cases := []struct {
		name     string
		user     *builder.UserBuilder
		purchase *builder.PurchaseBuilder
		expected queries.DiscountQuoteView
	}{
		{
			name:     "VIP 1000 is discounted to 800",
			user:     builder.NewUserBuilder().AsVIP(),
			purchase: builder.NewPurchaseBuilder().WithAmount(1000),
			expected: queries.DiscountQuoteView{
				UserID: "user1", UserType: "VIP", Amount: decimal.NewFromInt(1000), Currency: "USD",
				Success: true, FinalPrice: decimal.NewFromInt(800), DiscountAmount: decimal.NewFromInt(200),
				QuotedAt: quotedAt,
			},
		},
		{
			name:     "NORMAL 1000 pays full price",
			user:     builder.NewUserBuilder().AsNormal().WithID("user2"),
			purchase: builder.NewPurchaseBuilder().WithAmount(1000),
			expected: queries.DiscountQuoteView{
				UserID: "user2", UserType: "NORMAL", Amount: decimal.NewFromInt(1000), Currency: "USD",
				Success: true, FinalPrice: decimal.NewFromInt(1000), DiscountAmount: decimal.Zero,
				QuotedAt: quotedAt,
			},
		},
		{
			name:     "VIP 50 stays under threshold",
			user:     builder.NewUserBuilder().AsVIP(),
			purchase: builder.NewPurchaseBuilder().WithAmount(50).WithCurrency("eur"),
			expected: queries.DiscountQuoteView{
				UserID: "user1", UserType: "VIP", Amount: decimal.NewFromInt(50), Currency: "EUR",
				Success: true, FinalPrice: decimal.NewFromInt(50), DiscountAmount: decimal.Zero,
				QuotedAt: quotedAt,
			},
		},
		{
			name:     "negative amount is reported in the view",
			user:     builder.NewUserBuilder().AsVIP(),
			purchase: builder.NewPurchaseBuilder().WithAmount(-100),
			expected: queries.DiscountQuoteView{
				UserID: "user1", UserType: "VIP", Amount: decimal.NewFromInt(-100), Currency: "USD",
				Success: false, FinalPrice: decimal.Zero, DiscountAmount: decimal.Zero,
				ErrorMessage: &msg, QuotedAt: quotedAt,
			},
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			view, err := s.queries.Quote(context.Background(), c.purchase.BuildQuoteParams(c.user))
			s.Require().NoError(err)
			s.Require().NotNil(view)

			if diff := cmp.Diff(&c.expected, view, cmpOpts...); diff != "" {
				s.T().Errorf("DiscountQuoteView mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func (s *DiscountQueriesTestSuite) TestQuote_InvalidInput() {
	cases := []struct {
		name   string
		user   *builder.UserBuilder
		cur    string
		markIs error
		hint   string
	}{
		{name: "empty user id", user: builder.NewUserBuilder().WithID(""), cur: "USD", markIs: errs.ErrInvalidUserID},
		{name: "unknown user type", user: builder.NewUserBuilder().WithType("GOLD"), cur: "USD", markIs: errs.ErrInvalidUserType, hint: "user type must be VIP or NORMAL"},
		{name: "bad currency", user: builder.NewUserBuilder(), cur: "DOLLARS", markIs: errs.ErrInvalidCurrency, hint: "currency must be a three letter code"},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			params := builder.NewPurchaseBuilder().WithCurrency(c.cur).BuildQuoteParams(c.user)

			view, err := s.queries.Quote(context.Background(), params)

			s.Nil(view)
			s.Require().Error(err)
			s.True(errs.Is(err, errs.ErrInvalidQuoteInput))
			s.True(errs.Is(err, c.markIs))
			if c.hint != "" {
				s.Equal(c.hint, errs.Hint(err))
			}
		})
	}
}

func (s *DiscountQueriesTestSuite) TestQuote_Logging() {
	_, err := s.queries.Quote(context.Background(),
		builder.NewPurchaseBuilder().WithAmount(-5).BuildQuoteParams(builder.NewUserBuilder()))
	s.Require().NoError(err)

	out := s.logs.String()
	s.Contains(out, "level=WARN")
	s.Contains(out, `msg="Discount quoted"`)
	s.Contains(out, "user_id=user1")
	s.Contains(out, `reason="Invalid purchase amount"`)
}

func (s *DiscountQueriesTestSuite) TestQuote_Idempotent() {
	params := builder.NewPurchaseBuilder().WithAmount(321.5).BuildQuoteParams(builder.NewUserBuilder())

	first, err := s.queries.Quote(context.Background(), params)
	s.Require().NoError(err)
	second, err := s.queries.Quote(context.Background(), params)
	s.Require().NoError(err)

	if diff := cmp.Diff(first, second, cmpOpts...); diff != "" {
		s.T().Errorf("repeated quote differs (-first +second):\n%s", diff)
	}
}

func TestDiscountQueries_DelegatesToCalculator(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := discountmock.NewMockCalculator(ctrl)

	calc.EXPECT().
		Calculate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(u *user.User, p purchase.Purchase) discount.Result {
			assert.Equal(t, "user1", u.ID().Value())
			assert.True(t, u.IsVIP())
			assert.Equal(t, purchase.Currency("JPY"), p.Currency())
			assert.True(t, p.Amount().Decimal().Equal(decimal.NewFromInt(5000)))
			return discount.Result{
				Success:        true,
				FinalPrice:     decimal.NewFromInt(4000),
				DiscountAmount: decimal.NewFromInt(1000),
			}
		}).
		Times(1)

	q := queries.NewDiscountQueries(calc, clock.NewMockClock(quotedAt), nil)
	params := builder.NewPurchaseBuilder().WithAmount(5000).WithCurrency("JPY").BuildQuoteParams(builder.NewUserBuilder())

	view, err := q.Quote(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, view.Success)
	assert.True(t, view.FinalPrice.Equal(decimal.NewFromInt(4000)))
	assert.True(t, view.DiscountAmount.Equal(decimal.NewFromInt(1000)))
	assert.Nil(t, view.ErrorMessage)
	assert.Equal(t, quotedAt, view.QuotedAt)
}

func TestDiscountQueries_InvalidInputSkipsCalculator(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := discountmock.NewMockCalculator(ctrl)
	calc.EXPECT().Calculate(gomock.Any(), gomock.Any()).Times(0)

	q := queries.NewDiscountQueries(calc, clock.NewMockClock(quotedAt), nil)
	_, err := q.Quote(context.Background(),
		builder.NewPurchaseBuilder().BuildQuoteParams(builder.NewUserBuilder().WithType("")))

	require.Error(t, err)
}
