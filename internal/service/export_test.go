package service

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hance08/tally/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExport(t *testing.T) {
	f := newFixture(t)
	spec := f.expense(t, "Cash", "Food & Dining", "12.34")
	spec.Description = "Lunch"
	_, err := f.svc.Transaction.Add(f.ctx, spec, "")
	require.NoError(t, err)

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.svc.Export(f.ctx, &buf, "yaml"))

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "USD", got["base_currency"])
		assert.Len(t, got["accounts"], 3)
		assert.Contains(t, buf.String(), "Lunch")
		assert.Contains(t, buf.String(), "12.34")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, f.svc.Export(f.ctx, &buf, "JSON"))

		var got Dump
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got.Transactions, 1)
		assert.True(t, got.Transactions[0].Amount.Equal(dec("12.34")))
		assert.Len(t, got.Categories, 9)
		assert.True(t, got.ExportedAt.Equal(fixedNow))
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.ErrorIs(t, f.svc.Export(f.ctx, &buf, "csv"), apperrors.ErrValidation)
		assert.Zero(t, buf.Len())
	})
}
