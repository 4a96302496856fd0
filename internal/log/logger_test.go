package log

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want pterm.LogLevel
	}{
		{"", pterm.LogLevelWarn},
		{"debug", pterm.LogLevelDebug},
		{"INFO", pterm.LogLevelInfo},
		{"warning", pterm.LogLevelWarn},
		{"error", pterm.LogLevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	logger.Info("quiet")
	assert.Empty(t, buf.String())

	Component(logger, ComponentStorage).Warn("save failed", FieldKey, "finance-accounts-storage")
	assert.Contains(t, buf.String(), "save failed")
	assert.Contains(t, buf.String(), "finance-accounts-storage")
}
