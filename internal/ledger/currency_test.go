package ledger

import (
	"testing"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rates() RateTable {
	return RateTable{
		"USD": dec("1"),
		"EUR": dec("0.85"),
		"JPY": dec("110.5"),
		"XXX": dec("0"),
	}
}

func TestToDisplay(t *testing.T) {
	got, err := ToDisplay(dec("100"), "EUR", rates())
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("85")))

	got, err = ToDisplay(dec("2"), "jpy", rates())
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("221")))
}

func TestToDisplay_UnknownCurrency(t *testing.T) {
	_, err := ToDisplay(dec("100"), "GBP", rates())
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestFromDisplay(t *testing.T) {
	got, err := FromDisplay(dec("85"), "EUR", rates())
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("100")), "got %s", got)

	back, err := ToDisplay(got, "EUR", rates())
	require.NoError(t, err)
	assert.True(t, back.Equal(dec("85")))

	_, err = FromDisplay(dec("1"), "XXX", rates())
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	_, err = FromDisplay(dec("1"), "GBP", rates())
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}
