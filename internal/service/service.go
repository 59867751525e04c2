package service

import (
	"context"

	"github.com/hance08/numscribe/internal/checker"
	"github.com/hance08/numscribe/internal/config"
	"github.com/hance08/numscribe/internal/store"
	"github.com/pterm/pterm"
)

// ScriptChecker runs the external checker. *checker.Checker implements it.
type ScriptChecker interface {
	Check(ctx context.Context, script string) (*checker.Report, error)
	CheckFile(ctx context.Context, path string) (*checker.Report, error)
}

type Service struct {
	Script *ScriptService
	Config *config.Config
}

func NewService(repo store.Repository, chk ScriptChecker, cfg *config.Config, logger *pterm.Logger) *Service {
	return &Service{
		Script: NewScriptService(repo, chk, cfg, logger),
		Config: cfg,
	}
}
