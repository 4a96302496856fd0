package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/tally/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFlag(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"account", "list"}, ""},
		{[]string{"--config", "/tmp/a.yaml", "stats"}, "/tmp/a.yaml"},
		{[]string{"stats", "-c", "b.yaml"}, "b.yaml"},
		{[]string{"--config=c.yaml"}, "c.yaml"},
		{[]string{"-c=d.yaml"}, "d.yaml"},
		{[]string{"--", "--config", "e.yaml"}, ""},
		{[]string{"--config"}, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, configFlag(tt.args), "%v", tt.args)
	}
}

// useConfigFile points initConfig at a temp config file with the given body.
func useConfigFile(t *testing.T, body string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })
	return path
}

func TestInitConfig_EnvOverridesKeysMissingFromFile(t *testing.T) {
	path := useConfigFile(t, "defaults:\n  currency: EUR\n")
	t.Setenv("TALLY_DATABASE_DRIVER", "memory")
	t.Setenv("TALLY_LOG_LEVEL", "debug")
	t.Setenv("TALLY_DEFAULTS_SEED_ACCOUNTS", "false")

	require.NoError(t, initConfig())

	assert.Equal(t, constants.DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Defaults.SeedAccounts)
	assert.Equal(t, "EUR", cfg.Defaults.Currency)
	assert.Equal(t, "USD", cfg.Currencies.Base)
	assert.Len(t, cfg.Currencies.Rates, 15)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestInitConfig_EnvOverridesFile(t *testing.T) {
	useConfigFile(t, "database:\n  driver: sqlite\nlog:\n  level: error\n")
	t.Setenv("TALLY_LOG_LEVEL", "info")

	require.NoError(t, initConfig())

	assert.Equal(t, constants.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestInitConfig_UnsetCurrencyStillTriggersWizard(t *testing.T) {
	useConfigFile(t, "log:\n  level: warn\n")

	require.NoError(t, initConfig())

	assert.False(t, viper.IsSet("defaults.currency"))
	assert.Equal(t, "USD", cfg.Defaults.Currency)
}

func TestInitConfig_RejectsInvalidEnvValue(t *testing.T) {
	useConfigFile(t, "")
	t.Setenv("TALLY_DATABASE_DRIVER", "postgres")

	assert.Error(t, initConfig())
}
