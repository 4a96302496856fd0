package ledger

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RateTable maps a currency code to its multiplier relative to the base
// currency (1 base = rate units of the code).
type RateTable map[string]decimal.Decimal

// Rate looks up a code case-insensitively.
func (rt RateTable) Rate(code string) (decimal.Decimal, error) {
	rate, ok := rt[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return decimal.Zero, fmt.Errorf("currency %q: %w", code, apperrors.ErrUnknownCurrency)
	}
	return rate, nil
}

// ToDisplay converts a base-currency amount into the target currency.
func ToDisplay(amount decimal.Decimal, code string, rates RateTable) (decimal.Decimal, error) {
	rate, err := rates.Rate(code)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// FromDisplay converts an amount entered in the given currency back into the
// base currency.
func FromDisplay(amount decimal.Decimal, code string, rates RateTable) (decimal.Decimal, error) {
	rate, err := rates.Rate(code)
	if err != nil {
		return decimal.Zero, err
	}
	if rate.IsZero() {
		return decimal.Zero, fmt.Errorf("currency %q has a zero rate: %w", code, apperrors.ErrUnknownCurrency)
	}
	return amount.Div(rate), nil
}
