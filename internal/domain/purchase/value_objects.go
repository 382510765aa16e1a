package purchase

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrency = errors.New("invalid currency code")

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 style code. Amounts are never converted between currencies.
type Currency string

func NewCurrency(code string) (Currency, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !currencyRegex.MatchString(code) {
		return Currency(""), ErrInvalidCurrency
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

// Money is a decimal amount in the purchase currency, agnostic of minor units.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.String()
}
