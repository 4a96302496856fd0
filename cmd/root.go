package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/tally/cmd/account"
	"github.com/hance08/tally/cmd/transaction"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/errhandler"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// --config has to be known before the app is built
	cfgFile = configFlag(os.Args[1:])

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		pterm.Warning.Printf("Ignoring .env: %v\n", err)
	}

	if err := initConfig(); err != nil {
		errhandler.HandleError(err)
	}

	logger, err := applog.New(cfg.Log)
	if err != nil {
		errhandler.HandleError(err)
	}

	if err := initCurrency(); err != nil {
		errhandler.HandleError(err)
	}

	ctx := context.Background()
	application, cleanup, err := app.NewApp(ctx, cfg, migrations, logger)
	if err != nil {
		errhandler.HandleError(err)
	}

	ui.ApplyTheme(application.Service.Settings.Get().DarkMode)

	rootCmd := &cobra.Command{
		Use:           "tally",
		Short:         "tally is a CLI based personal finance tracker",
		Long:          `tally tracks accounts, income and expenses, and reports how your money moves.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	svc := application.Service
	rootCmd.AddCommand(account.NewAccountCmd(svc))
	rootCmd.AddCommand(transaction.NewTransactionCmd(svc))

	rootCmd.AddCommand(transaction.NewAddCmd(svc))
	rootCmd.AddCommand(NewStatsCmd(svc))
	rootCmd.AddCommand(NewCategoryCmd(svc))
	rootCmd.AddCommand(NewSettingsCmd(svc))
	rootCmd.AddCommand(NewExportCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(application))

	err = rootCmd.ExecuteContext(ctx)
	cleanup()
	if err != nil {
		errhandler.HandleError(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("TALLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override
	for _, key := range config.EnvKeys() {
		if err := viper.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s to the environment: %w", key, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return cfg.Validate()
}

// initCurrency runs the currency wizard the first time tally starts in a
// terminal and no currency is configured.
func initCurrency() error {
	if viper.IsSet("defaults.currency") || !isTerminal() {
		return nil
	}

	currency, err := prompts.PromptInitCurrency(cfg.Defaults.Currency, cfg.Currencies.Codes(), cfg.Currencies.Symbol)
	if err != nil {
		return err
	}

	viper.Set("defaults.currency", currency)
	cfg.Defaults.Currency = currency

	if cfg.ConfigPath != "" {
		if err := viper.WriteConfig(); err != nil {
			return fmt.Errorf("failed to save config to file: %w", err)
		}
	}

	pterm.Success.Printf("Configuration saved. Display currency set to: %s\n", currency)

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// configFlag finds --config/-c in args without parsing the rest.
func configFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c=")
		}
	}
	return ""
}

func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
