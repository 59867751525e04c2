package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/numscribe/internal/checker"
	"github.com/hance08/numscribe/internal/compiler"
	"github.com/hance08/numscribe/internal/config"
	"github.com/hance08/numscribe/internal/constants"
	"github.com/hance08/numscribe/internal/loader"
	"github.com/hance08/numscribe/internal/model"
	"github.com/hance08/numscribe/internal/store"
	"github.com/hance08/numscribe/internal/validation"
	"github.com/pterm/pterm"
)

// ScriptDetail is a stored script together with its compile warnings.
type ScriptDetail struct {
	store.Script
	Warnings []compiler.Warning
}

func (d *ScriptDetail) CreatedTime() time.Time {
	return time.Unix(d.CreatedAt, 0)
}

type ScriptService struct {
	repo    store.Repository
	checker ScriptChecker
	config  *config.Config
	logger  *pterm.Logger
	now     func() time.Time
}

func NewScriptService(repo store.Repository, chk ScriptChecker, cfg *config.Config, logger *pterm.Logger) *ScriptService {
	if logger == nil {
		logger = &pterm.DefaultLogger
	}
	return &ScriptService{
		repo:    repo,
		checker: chk,
		config:  cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Compile validates the intent (unless disabled in config) and renders it.
func (s *ScriptService) Compile(in *model.Intent) (*compiler.Result, error) {
	if !s.config.Compile.SkipValidation {
		if err := validation.ValidateIntent(in); err != nil {
			return nil, fmt.Errorf("invalid intent:\n%w", err)
		}
	}

	res, err := compiler.Compile(*in)
	if err != nil {
		return nil, fmt.Errorf("failed to compile intent: %w", err)
	}

	s.logger.Debug("compiled intent", s.logger.Args(
		"summary", in.Summary,
		"postings", len(in.Postings),
		"metadata", len(in.Metadata),
		"warnings", len(res.Warnings),
	))
	for _, w := range res.Warnings {
		s.logger.Debug("compile warning", s.logger.Args("posting", w.Posting+1, "code", w.Code))
	}

	return res, nil
}

// Save stores the intent, its script and warnings in one transaction.
func (s *ScriptService) Save(in *model.Intent, res *compiler.Result) (*ScriptDetail, error) {
	intentJSON, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode intent: %w", err)
	}

	rec := store.Script{
		Ref:         uuid.NewString(),
		CreatedAt:   s.now().Unix(),
		Summary:     in.Summary,
		Intent:      string(intentJSON),
		Script:      res.Script,
		CheckStatus: constants.CheckUnchecked,
	}

	warnings := make([]store.Warning, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		warnings = append(warnings, store.Warning{
			PostingIndex: w.Posting,
			Code:         string(w.Code),
			Message:      w.Message,
		})
	}

	err = s.repo.ExecTx(func(repo store.Repository) error {
		id, err := repo.CreateScriptWithWarnings(rec, warnings)
		if err != nil {
			return err
		}
		rec.ID = id
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save script: %w", err)
	}

	s.logger.Debug("saved script", s.logger.Args("id", rec.ID, "ref", rec.Ref))

	return &ScriptDetail{Script: rec, Warnings: res.Warnings}, nil
}

// GetScript retrieves a stored script by numeric ID or by ref.
func (s *ScriptService) GetScript(idOrRef string) (*ScriptDetail, error) {
	var (
		rec *store.Script
		err error
	)

	if id, parseErr := strconv.ParseInt(idOrRef, 10, 64); parseErr == nil {
		rec, err = s.repo.GetScriptByID(id)
	} else {
		rec, err = s.repo.GetScriptByRef(idOrRef)
	}
	if err != nil {
		return nil, err
	}

	return s.detail(rec)
}

func (s *ScriptService) detail(rec *store.Script) (*ScriptDetail, error) {
	stored, err := s.repo.GetWarningsByScript(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get warnings for script %d: %w", rec.ID, err)
	}

	detail := &ScriptDetail{Script: *rec}
	for _, w := range stored {
		detail.Warnings = append(detail.Warnings, compiler.Warning{
			Code:    compiler.WarningCode(w.Code),
			Posting: w.PostingIndex,
			Message: w.Message,
		})
	}
	return detail, nil
}

// ListScripts returns the most recent scripts.
func (s *ScriptService) ListScripts(limit int) ([]*store.Script, error) {
	scripts, err := s.repo.GetAllScripts(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}
	return scripts, nil
}

func (s *ScriptService) DeleteScript(id int64) error {
	return s.repo.DeleteScript(id)
}

// Intent decodes the intent a stored script was compiled from.
func (s *ScriptService) Intent(detail *ScriptDetail) (*model.Intent, error) {
	in, err := loader.ParseIntent([]byte(detail.Intent), loader.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("stored intent for script %d is unreadable: %w", detail.ID, err)
	}
	return in, nil
}

// Check runs the external checker on a stored script and records the verdict.
func (s *ScriptService) Check(ctx context.Context, detail *ScriptDetail) (*checker.Report, error) {
	report, err := s.CheckScript(ctx, detail.Script.Script)
	if err != nil {
		return nil, err
	}

	status := constants.CheckFailed
	if report.Passed {
		status = constants.CheckPassed
	}
	if err := s.repo.UpdateCheckStatus(detail.ID, status, report.Output); err != nil {
		return nil, fmt.Errorf("failed to record check result: %w", err)
	}
	detail.CheckStatus = status
	detail.CheckOutput = report.Output

	return report, nil
}
