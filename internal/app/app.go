package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/numscribe/internal/checker"
	"github.com/hance08/numscribe/internal/config"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Logger  *pterm.Logger
}

// NewApp opens the history database and wires the checker and services, then returns the App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPath, err := DatabasePath(cfg)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logger := NewLogger(cfg.Log.Level)
	chk := checker.New(cfg.Checker.Command, cfg.Checker.Args, cfg.Checker.Timeout)
	svc := service.NewService(dbStore, chk, cfg, logger)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			pterm.Error.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Logger:  logger,
	}, cleanup, nil
}

// NewLogger builds the pterm logger used for diagnostics. Unknown levels fall back to info.
func NewLogger(level string) *pterm.Logger {
	lvl := pterm.LogLevelInfo
	switch strings.ToLower(level) {
	case "trace":
		lvl = pterm.LogLevelTrace
	case "debug":
		lvl = pterm.LogLevelDebug
	case "warn", "warning":
		lvl = pterm.LogLevelWarn
	case "error":
		lvl = pterm.LogLevelError
	}
	return pterm.DefaultLogger.WithLevel(lvl).WithWriter(os.Stderr)
}

// DatabasePath resolves the configured database path, defaulting to the app data dir.
func DatabasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Path != "" {
		return ExpandPath(cfg.Database.Path)
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, "numscribe.db"), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".numscribe"), nil
	}

	return filepath.Join(configDir, "numscribe"), nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

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
	return path, nil
}
