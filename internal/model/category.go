package model

import "time"

type Category struct {
	ID        string          `json:"id" yaml:"id"`
	Name      string          `json:"name" yaml:"name"`
	Type      TransactionType `json:"type" yaml:"type"`
	Color     string          `json:"color" yaml:"color"`
	Icon      string          `json:"icon" yaml:"icon"`
	IsDefault bool            `json:"isDefault" yaml:"is_default"`
	CreatedAt time.Time       `json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" yaml:"updated_at"`
}

type CategorySpec struct {
	Name  string          `validate:"required,max=100"`
	Type  TransactionType `validate:"required,oneof=income expense"`
	Color string          `validate:"omitempty,hexcolor"`
	Icon  string
}

type CategoryPatch struct {
	Name  *string `validate:"omitempty,min=1,max=100"`
	Color *string `validate:"omitempty,hexcolor"`
	Icon  *string
}
