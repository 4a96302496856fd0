package service

import (
	"testing"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/hance08/tally/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService(t *testing.T) {
	f := newFixture(t)

	s, err := f.svc.Settings.SetCurrency(f.ctx, "gbp")
	require.NoError(t, err)
	assert.Equal(t, "GBP", s.Currency)

	_, err = f.svc.Settings.SetCurrency(f.ctx, "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
	assert.Equal(t, "GBP", f.svc.Settings.Get().Currency)

	s, err = f.svc.Settings.SetLanguage(f.ctx, "FR")
	require.NoError(t, err)
	assert.Equal(t, "fr", s.Language)

	_, err = f.svc.Settings.SetLanguage(f.ctx, "tlh")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.True(t, f.svc.Settings.ToggleDarkMode(f.ctx).DarkMode)
	assert.False(t, f.svc.Settings.ToggleNotifications(f.ctx).Notifications)
	assert.False(t, f.svc.Settings.ToggleDarkMode(f.ctx).DarkMode)

	// seed + currency + language + three toggles
	assert.Equal(t, 6, f.kv.Saves[constants.KeySettings])
}
