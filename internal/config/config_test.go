package config

import (
	"testing"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefault_IsValid(t *testing.T) {
	cfg := NewDefault()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Currencies.Rates, 15)
	assert.Len(t, cfg.Languages, 13)
}

func TestRateTable_NormalisesKeys(t *testing.T) {
	c := CurrencyConfig{Rates: map[string]float64{"eur": 0.85, "usd": 1}}
	rt := c.RateTable()

	rate, err := rt.Rate("EUR")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.85")))
	assert.Equal(t, []string{"EUR", "USD"}, c.Codes())
}

func TestSymbol(t *testing.T) {
	c := CurrencyConfig{Symbols: map[string]string{"eur": "€"}}
	assert.Equal(t, "€", c.Symbol("EUR"))
	assert.Equal(t, "XYZ", c.Symbol("xyz"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.Database.Driver = "postgres" }, "unknown database driver"},
		{"mongo without uri", func(c *Config) { c.Database.Driver = "mongo" }, "mongo_uri"},
		{"negative rate", func(c *Config) { c.Currencies.Rates["EUR"] = -1 }, "must be positive"},
		{"base missing", func(c *Config) { c.Currencies.Base = "XXX" }, "base currency"},
		{"default currency missing", func(c *Config) { c.Defaults.Currency = "XXX" }, "default currency"},
		{"unknown language", func(c *Config) { c.Defaults.Language = "tlh" }, "not available"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	cfg := NewDefault()
	cfg.Currencies.Base = "XXX"
	assert.ErrorIs(t, cfg.Validate(), apperrors.ErrUnknownCurrency)
}

func TestEnvKeys(t *testing.T) {
	keys := EnvKeys()

	assert.ElementsMatch(t, []string{
		"database.driver",
		"database.path",
		"database.mongo_uri",
		"database.mongo_database",
		"database.mongo_collection",
		"defaults.currency",
		"defaults.language",
		"defaults.user",
		"defaults.seed_accounts",
		"log.level",
		"currencies.base",
	}, keys)
}
