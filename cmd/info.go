package cmd

import (
	"os"
	"os/exec"

	"github.com/hance08/numscribe/internal/app"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, checker command and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := app.DatabasePath(cfg)
	if err != nil {
		dbPath = "Unknown"
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	checkerFound := false
	if cfg.Checker.Command != "" {
		if _, err := exec.LookPath(cfg.Checker.Command); err == nil {
			checkerFound = true
		}
	}

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		DBPath:         dbPath,
		DBExists:       dbExists,
		DefaultAsset:   cfg.Defaults.Asset,
		CheckerCommand: cfg.Checker.Command,
		CheckerArgs:    cfg.Checker.Args,
		CheckerFound:   checkerFound,
		AppDataDir:     appDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
