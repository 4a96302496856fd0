package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
	// TxTransfer is part of the persisted vocabulary but no operation accepts it.
	TxTransfer TransactionType = "transfer"
)

// Supported reports whether ledger operations accept the type.
func (t TransactionType) Supported() bool {
	return t == TxIncome || t == TxExpense
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

type Transaction struct {
	ID                 string          `json:"id" yaml:"id"`
	Amount             decimal.Decimal `json:"amount" yaml:"amount"`
	Description        string          `json:"description" yaml:"description"`
	Date               time.Time       `json:"date" yaml:"date"`
	CategoryID         string          `json:"categoryId" yaml:"category_id"`
	AccountID          string          `json:"accountId" yaml:"account_id"`
	Type               TransactionType `json:"type" yaml:"type"`
	IsRecurring        bool            `json:"isRecurring" yaml:"is_recurring"`
	RecurringFrequency Frequency       `json:"recurringFrequency,omitempty" yaml:"recurring_frequency,omitempty"`
	Attachments        []string        `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	Notes              string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedBy          string          `json:"createdBy" yaml:"created_by"`
	CreatedAt          time.Time       `json:"createdAt" yaml:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" yaml:"updated_at"`
}

// Effect is the signed balance delta the transaction contributes to its account.
func (t Transaction) Effect() decimal.Decimal {
	if t.Type == TxIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TransactionSpec is the input for recording a transaction.
type TransactionSpec struct {
	Amount             decimal.Decimal `validate:"gt=0"`
	Description        string          `validate:"max=200"`
	Date               time.Time       `validate:"required"`
	CategoryID         string          `validate:"required"`
	AccountID          string          `validate:"required"`
	Type               TransactionType `validate:"required,oneof=income expense"`
	IsRecurring        bool
	RecurringFrequency Frequency `validate:"omitempty,oneof=daily weekly monthly yearly"`
	Attachments        []string
	Notes              string
	CreatedBy          string
}

// TransactionPatch lists the mergeable transaction fields; nil means unchanged.
type TransactionPatch struct {
	Amount             *decimal.Decimal `validate:"omitempty,gt=0"`
	Description        *string          `validate:"omitempty,max=200"`
	Date               *time.Time
	CategoryID         *string          `validate:"omitempty,min=1"`
	AccountID          *string          `validate:"omitempty,min=1"`
	Type               *TransactionType `validate:"omitempty,oneof=income expense"`
	IsRecurring        *bool
	RecurringFrequency *Frequency `validate:"omitempty,oneof=daily weekly monthly yearly"`
	Attachments        *[]string
	Notes              *string
}

// Apply merges the patch into tx. Fields the patch leaves nil keep their
// prior values, which is what balance effect computation relies on.
func (p TransactionPatch) Apply(tx *Transaction) {
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}
	if p.Description != nil {
		tx.Description = *p.Description
	}
	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.CategoryID != nil {
		tx.CategoryID = *p.CategoryID
	}
	if p.AccountID != nil {
		tx.AccountID = *p.AccountID
	}
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.IsRecurring != nil {
		tx.IsRecurring = *p.IsRecurring
	}
	if p.RecurringFrequency != nil {
		tx.RecurringFrequency = *p.RecurringFrequency
	}
	if p.Attachments != nil {
		tx.Attachments = append([]string(nil), (*p.Attachments)...)
	}
	if p.Notes != nil {
		tx.Notes = *p.Notes
	}
}

// IsEmpty reports whether no field is set.
func (p TransactionPatch) IsEmpty() bool {
	return p.Amount == nil && p.Description == nil && p.Date == nil &&
		p.CategoryID == nil && p.AccountID == nil && p.Type == nil &&
		p.IsRecurring == nil && p.RecurringFrequency == nil &&
		p.Attachments == nil && p.Notes == nil
}
