package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountCash       AccountType = "cash"
	AccountBank       AccountType = "bank"
	AccountCredit     AccountType = "credit"
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
	AccountOther      AccountType = "other"
)

// AccountTypes lists every account type in display order.
var AccountTypes = []AccountType{
	AccountCash, AccountBank, AccountCredit, AccountSavings, AccountInvestment, AccountOther,
}

func (t AccountType) Valid() bool {
	for _, at := range AccountTypes {
		if t == at {
			return true
		}
	}
	return false
}

// Account holds a balance in the base currency. Currency is informational only.
type Account struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Type           AccountType     `json:"type" yaml:"type"`
	Balance        decimal.Decimal `json:"balance" yaml:"balance"`
	OpeningBalance decimal.Decimal `json:"openingBalance" yaml:"opening_balance"`
	Currency       string          `json:"currency" yaml:"currency"`
	Color          string          `json:"color" yaml:"color"`
	Icon           string          `json:"icon" yaml:"icon"`
	IsShared       bool            `json:"isShared" yaml:"is_shared"`
	SharedWith     []string        `json:"sharedWith,omitempty" yaml:"shared_with,omitempty"`
	CreatedAt      time.Time       `json:"createdAt" yaml:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" yaml:"updated_at"`
}

// AccountSpec is the input for creating an account.
type AccountSpec struct {
	Name           string          `validate:"required,max=100"`
	Type           AccountType     `validate:"required,oneof=cash bank credit savings investment other"`
	InitialBalance decimal.Decimal
	Currency       string `validate:"omitempty,currency"`
	Color          string `validate:"omitempty,hexcolor"`
	Icon           string
}

// AccountPatch lists the mergeable account fields; nil means unchanged.
// There is no Balance field; balances only move through the transaction ledger.
type AccountPatch struct {
	Name     *string      `validate:"omitempty,min=1,max=100"`
	Type     *AccountType `validate:"omitempty,oneof=cash bank credit savings investment other"`
	Currency *string      `validate:"omitempty,currency"`
	Color    *string      `validate:"omitempty,hexcolor"`
	Icon     *string
}

// Apply merges the patch into acc and reports whether any field was set.
func (p AccountPatch) Apply(acc *Account) bool {
	changed := false
	if p.Name != nil {
		acc.Name = *p.Name
		changed = true
	}
	if p.Type != nil {
		acc.Type = *p.Type
		changed = true
	}
	if p.Currency != nil {
		acc.Currency = *p.Currency
		changed = true
	}
	if p.Color != nil {
		acc.Color = *p.Color
		changed = true
	}
	if p.Icon != nil {
		acc.Icon = *p.Icon
		changed = true
	}
	return changed
}
