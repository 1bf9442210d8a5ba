package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned when two prices in different currencies
// are compared.
var ErrCurrencyMismatch = errors.New("cannot compare prices with different currencies")

// Price is one product price in one currency. A product may carry several.
type Price struct {
	ID             uint
	ProductID      string
	Amount         decimal.Decimal
	CurrencyLabel  string
	CurrencySymbol string
	CreatedAt      time.Time
}

func (p Price) Validate() bool {
	return p.ProductID != "" &&
		!p.Amount.IsNegative() &&
		p.CurrencyLabel != "" &&
		p.CurrencySymbol != ""
}

// Formatted renders the price with its symbol, e.g. "$49.99".
func (p Price) Formatted() string {
	return p.CurrencySymbol + p.Amount.StringFixed(2)
}

// FormattedWithLabel renders the price with symbol and label, e.g. "$49.99 USD".
func (p Price) FormattedWithLabel() string {
	return p.Formatted() + " " + p.CurrencyLabel
}

func (p Price) IsDefaultCurrency() bool {
	return strings.ToUpper(p.CurrencyLabel) == "USD"
}

// IsLowerThan compares amounts; both prices must share a currency.
func (p Price) IsLowerThan(other Price) (bool, error) {
	if p.CurrencyLabel != other.CurrencyLabel {
		return false, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, p.CurrencyLabel, other.CurrencyLabel)
	}
	return p.Amount.LessThan(other.Amount), nil
}

// DiscountPercentage returns how far below the original price this one is,
// in percent. Zero when the original amount is zero.
func (p Price) DiscountPercentage(original Price) (decimal.Decimal, error) {
	if p.CurrencyLabel != original.CurrencyLabel {
		return decimal.Zero, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, p.CurrencyLabel, original.CurrencyLabel)
	}
	if original.Amount.IsZero() {
		return decimal.Zero, nil
	}
	return original.Amount.Sub(p.Amount).
		Div(original.Amount).
		Mul(decimal.NewFromInt(100)), nil
}
