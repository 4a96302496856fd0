package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hance08/tally/internal/apperrors"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Dump is the whole book as written by Export.
type Dump struct {
	ExportedAt   time.Time           `json:"exportedAt" yaml:"exported_at"`
	BaseCurrency string              `json:"baseCurrency" yaml:"base_currency"`
	Settings     model.Settings      `json:"settings" yaml:"settings"`
	Accounts     []model.Account     `json:"accounts" yaml:"accounts"`
	Categories   []model.Category    `json:"categories" yaml:"categories"`
	Transactions []model.Transaction `json:"transactions" yaml:"transactions"`
}

func (s *Service) Snapshot() Dump {
	b := s.book
	return Dump{
		ExportedAt:   b.now(),
		BaseCurrency: b.cfg.Currencies.Base,
		Settings:     b.settings,
		Accounts:     b.accounts.All(),
		Categories:   b.categories.All(),
		Transactions: b.txns.All(),
	}
}

// Export writes the book to w as yaml or json.
func (s *Service) Export(ctx context.Context, w io.Writer, format string) error {
	dump := s.Snapshot()

	var err error
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(dump)
		if err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(dump)
	default:
		return fmt.Errorf("unknown export format %q (must be yaml or json): %w", format, apperrors.ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	applog.Component(s.book.logger, applog.ComponentApp).DebugContext(ctx, "book exported",
		applog.FieldOperation, applog.OpExport,
		applog.FieldCount, len(dump.Transactions))
	return nil
}
