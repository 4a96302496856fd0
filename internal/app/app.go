package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/constants"
	applog "github.com/hance08/tally/internal/log"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.KVStore
	// DBPath is the resolved sqlite file, empty for other drivers.
	DBPath string
}

// NewApp opens the configured store, builds the service and loads the
// persisted book, then returns the App with its cleanup func.
func NewApp(ctx context.Context, cfg *config.Config, migrationFS fs.FS, logger *slog.Logger) (*App, func(), error) {
	kv, dbPath, err := openStore(ctx, cfg, migrationFS)
	if err != nil {
		return nil, nil, err
	}

	applog.Component(logger, applog.ComponentStorage).Debug("store opened",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldDriver, cfg.Database.Driver)

	cleanup := func() {
		if err := kv.Close(); err != nil {
			applog.Component(logger, applog.ComponentStorage).Error("failed to close store", applog.FieldError, err)
		}
	}

	svc := service.New(kv, cfg, logger)
	if err := svc.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load data: %w", err)
	}

	return &App{
		Service: svc,
		Store:   kv,
		DBPath:  dbPath,
	}, cleanup, nil
}

func openStore(ctx context.Context, cfg *config.Config, migrationFS fs.FS) (store.KVStore, string, error) {
	switch cfg.Database.Driver {
	case constants.DriverMemory:
		return store.NewMemoryStore(), "", nil

	case constants.DriverMongo:
		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		kv, err := store.ConnectMongoStore(dialCtx,
			cfg.Database.MongoURI,
			cfg.Database.MongoDatabase,
			cfg.Database.MongoCollection)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize database: %w", err)
		}
		return kv, "", nil

	default:
		dbPath, err := ResolveDBPath(cfg.Database.Path)
		if err != nil {
			return nil, "", err
		}
		kv, err := store.NewSQLiteStore(dbPath, migrationFS)
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize database: %w", err)
		}
		return kv, dbPath, nil
	}
}

// ResolveDBPath expands ~ and falls back to tally.db in the app data dir.
func ResolveDBPath(raw string) (string, error) {
	if raw == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, "tally.db"), nil
	}
	return expandPath(raw)
}

// AppDataDir is where config.yaml and the default database live.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tally"), nil
	}

	return filepath.Join(configDir, "tally"), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
