package utils

import (
	"testing"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"150", "150", false},
		{"150.5", "150.5", false},
		{" 1,250.75 ", "1250.75", false},
		{"-350", "-350", false},
		{"", "", true},
		{"12.3.4", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, apperrors.ErrValidation, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%q -> %s", tt.in, got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"999.999", "1,000.00"},
		{"1234567.891", "1,234,567.89"},
		{"-350", "-350.00"},
		{"-0.001", "0.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)), tt.in)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$2,500.00", FormatMoney(decimal.NewFromInt(2500), "$"))
	assert.Equal(t, "-$350.00", FormatMoney(decimal.NewFromInt(-350), "$"))
	assert.Equal(t, "+€8.50", FormatSigned(decimal.RequireFromString("8.5"), "€"))
	assert.Equal(t, "-€8.50", FormatSigned(decimal.RequireFromString("-8.5"), "€"))
}
