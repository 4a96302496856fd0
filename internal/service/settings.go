package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/constants"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/model"
)

type SettingsService struct {
	book   *book
	logger *slog.Logger
}

func (ss *SettingsService) Get() model.Settings {
	return ss.book.settings
}

// SetCurrency changes the display currency. The code must be in the rate table.
func (ss *SettingsService) SetCurrency(ctx context.Context, code string) (model.Settings, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, err := ss.book.rates.Rate(code); err != nil {
		return ss.book.settings, err
	}

	ss.book.settings.Currency = code
	ss.logger.Info("display currency changed", applog.FieldCurrency, code)
	ss.book.persist(ctx, constants.KeySettings)
	return ss.book.settings, nil
}

func (ss *SettingsService) SetLanguage(ctx context.Context, code string) (model.Settings, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if !ss.book.cfg.HasLanguage(code) {
		return ss.book.settings, fmt.Errorf("language %q is not available: %w", code, apperrors.ErrValidation)
	}

	ss.book.settings.Language = code
	ss.book.persist(ctx, constants.KeySettings)
	return ss.book.settings, nil
}

func (ss *SettingsService) ToggleDarkMode(ctx context.Context) model.Settings {
	ss.book.settings.DarkMode = !ss.book.settings.DarkMode
	ss.book.persist(ctx, constants.KeySettings)
	return ss.book.settings
}

func (ss *SettingsService) ToggleNotifications(ctx context.Context) model.Settings {
	ss.book.settings.Notifications = !ss.book.settings.Notifications
	ss.book.persist(ctx, constants.KeySettings)
	return ss.book.settings
}
