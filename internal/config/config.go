package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/log"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        log.Config     `mapstructure:"log"`
	Currencies CurrencyConfig `mapstructure:"currencies"`
	Languages  []Language     `mapstructure:"languages"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	MongoURI        string `mapstructure:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection"`
}

type DefaultsConfig struct {
	Currency     string `mapstructure:"currency"`
	Language     string `mapstructure:"language"`
	User         string `mapstructure:"user"`
	SeedAccounts bool   `mapstructure:"seed_accounts"`
}

// CurrencyConfig holds the display rate table. Rates are units of the code
// per one unit of Base. Viper lower-cases map keys, so lookups go through
// RateTable and Symbol, which normalise them.
type CurrencyConfig struct {
	Base    string             `mapstructure:"base"`
	Rates   map[string]float64 `mapstructure:"rates"`
	Symbols map[string]string  `mapstructure:"symbols"`
}

type Language struct {
	Code string `mapstructure:"code"`
	Name string `mapstructure:"name"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          constants.DriverSQLite,
			Path:            "",
			MongoDatabase:   "tally",
			MongoCollection: "kv_entries",
		},
		Defaults: DefaultsConfig{
			Currency:     "USD",
			Language:     "en",
			User:         "1",
			SeedAccounts: true,
		},
		Log: log.DefaultConfig(),
		Currencies: CurrencyConfig{
			Base: "USD",
			Rates: map[string]float64{
				"USD": 1, "EUR": 0.85, "GBP": 0.75, "JPY": 110.5, "CNY": 6.45,
				"AUD": 1.35, "CAD": 1.25, "CHF": 0.92, "HKD": 7.78, "SGD": 1.35,
				"INR": 74.5, "BRL": 5.2, "RUB": 73.5, "KRW": 1150, "MXN": 20.1,
			},
			Symbols: map[string]string{
				"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥", "CNY": "¥",
				"AUD": "A$", "CAD": "C$", "CHF": "Fr", "HKD": "HK$", "SGD": "S$",
				"INR": "₹", "BRL": "R$", "RUB": "₽", "KRW": "₩", "MXN": "Mex$",
			},
		},
		Languages: []Language{
			{"en", "English"}, {"es", "Español"}, {"fr", "Français"}, {"de", "Deutsch"},
			{"zh", "中文"}, {"ja", "日本語"}, {"ko", "한국어"}, {"pt", "Português"},
			{"ru", "Русский"}, {"ar", "العربية"}, {"hi", "हिन्दी"}, {"it", "Italiano"},
			{"vi", "Tiếng Việt"},
		},
	}
}

// RateTable converts the configured rates into exact decimals keyed by
// upper-case code.
func (c CurrencyConfig) RateTable() ledger.RateTable {
	rt := make(ledger.RateTable, len(c.Rates))
	for code, rate := range c.Rates {
		rt[strings.ToUpper(code)] = decimal.NewFromFloat(rate)
	}
	return rt
}

// Symbol returns the display symbol for code, falling back to the code itself.
func (c CurrencyConfig) Symbol(code string) string {
	for k, sym := range c.Symbols {
		if strings.EqualFold(k, code) {
			return sym
		}
	}
	return strings.ToUpper(code)
}

// Codes lists the configured currency codes alphabetically.
func (c CurrencyConfig) Codes() []string {
	codes := make([]string, 0, len(c.Rates))
	for code := range c.Rates {
		codes = append(codes, strings.ToUpper(code))
	}
	sort.Strings(codes)
	return codes
}

func (c *Config) HasLanguage(code string) bool {
	for _, l := range c.Languages {
		if strings.EqualFold(l.Code, code) {
			return true
		}
	}
	return false
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case constants.DriverSQLite, constants.DriverMemory:
	case constants.DriverMongo:
		if c.Database.MongoURI == "" {
			return fmt.Errorf("database.mongo_uri is required for the mongo driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q (must be sqlite, memory or mongo)", c.Database.Driver)
	}

	for code, rate := range c.Currencies.Rates {
		if rate <= 0 {
			return fmt.Errorf("currency rate for %s must be positive", strings.ToUpper(code))
		}
	}

	rates := c.Currencies.RateTable()
	if _, err := rates.Rate(c.Currencies.Base); err != nil {
		return fmt.Errorf("base currency: %w", err)
	}
	if c.Defaults.Currency != "" {
		if _, err := rates.Rate(c.Defaults.Currency); err != nil {
			return fmt.Errorf("default currency: %w", err)
		}
	}
	if c.Defaults.Language != "" && !c.HasLanguage(c.Defaults.Language) {
		return fmt.Errorf("default language %q is not available", c.Defaults.Language)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// EnvKeys lists the dotted keys of every scalar setting, e.g.
// "database.driver". Viper only applies environment overrides to keys it
// knows, so each one is bound before decoding. Maps and lists are file-only.
func EnvKeys() []string {
	return scalarKeys(reflect.TypeOf(Config{}), "")
}

func scalarKeys(t reflect.Type, prefix string) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		switch f.Type.Kind() {
		case reflect.Struct:
			keys = append(keys, scalarKeys(f.Type, key)...)
		case reflect.String, reflect.Bool,
			reflect.Int, reflect.Int64, reflect.Float64:
			keys = append(keys, key)
		}
	}
	return keys
}
