package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/shopspring/decimal"
)

// The validators below plug into huh inputs, which hand over raw strings.

func ValidateName(val string) error {
	name := strings.TrimSpace(val)
	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ValidateCurrency accepts an empty value, which means the default currency.
func ValidateCurrency(val string) error {
	currency := strings.TrimSpace(strings.ToUpper(val))
	if currency == "" {
		return nil
	}
	if !isCurrencyCode(currency) {
		return fmt.Errorf("currency code must be 3 letters (e.g. USD)")
	}
	return nil
}

// ValidateBalance allows negative values; credit accounts open in debt.
func ValidateBalance(val string) error {
	input := strings.TrimSpace(val)
	if input == "" {
		return nil
	}
	if _, err := decimal.NewFromString(input); err != nil {
		return fmt.Errorf("invalid number format")
	}
	return nil
}

func ValidateAmount(val string) error {
	input := strings.TrimSpace(val)
	if input == "" {
		return fmt.Errorf("amount can't be empty")
	}
	d, err := decimal.NewFromString(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if !d.IsPositive() {
		return fmt.Errorf("amount must be greater than 0")
	}
	return nil
}

func ValidateDate(val string) error {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	if _, err := constants.ParseDate(val); err != nil {
		return fmt.Errorf("invalid date format, use %s", constants.DateFormat)
	}
	return nil
}

// ValidateColor accepts an empty value or a hex color such as #FF9500.
func ValidateColor(val string) error {
	if err := Validator().Var(strings.TrimSpace(val), "omitempty,hexcolor"); err != nil {
		return fmt.Errorf("color must be a hex value such as #FF9500")
	}
	return nil
}
