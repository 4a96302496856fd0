package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ParseAmount reads a user-entered money value. Thousands separators are
// accepted and dropped.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("invalid amount format: empty: %w", apperrors.ErrValidation)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s: %w", amountStr, apperrors.ErrValidation)
	}
	return d, nil
}

// FormatAmount renders two decimals with thousands separators.
func FormatAmount(amount decimal.Decimal) string {
	s := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatMoney prefixes FormatAmount with the currency symbol, keeping the sign
// in front: -$12.50.
func FormatMoney(amount decimal.Decimal, symbol string) string {
	formatted := FormatAmount(amount)
	if rest, neg := strings.CutPrefix(formatted, "-"); neg {
		return "-" + symbol + rest
	}
	return symbol + formatted
}

// FormatSigned renders an amount with an explicit + or - sign.
func FormatSigned(amount decimal.Decimal, symbol string) string {
	if amount.IsNegative() {
		return FormatMoney(amount, symbol)
	}
	return "+" + FormatMoney(amount, symbol)
}
