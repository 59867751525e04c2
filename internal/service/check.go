package service

import (
	"context"
	"fmt"

	"github.com/hance08/numscribe/internal/checker"
)

// CheckScript runs the external checker on raw script text.
func (s *ScriptService) CheckScript(ctx context.Context, script string) (*checker.Report, error) {
	if s.checker == nil {
		return nil, fmt.Errorf("%w: checker not configured", checker.ErrCheckerUnavailable)
	}

	report, err := s.checker.Check(ctx, script)
	if err != nil {
		return nil, fmt.Errorf("failed to check script: %w", err)
	}

	s.logger.Debug("checked script", s.logger.Args("passed", report.Passed, "diagnostics", len(report.Diagnostics)))
	return report, nil
}

// CheckFile runs the external checker on a script file.
func (s *ScriptService) CheckFile(ctx context.Context, path string) (*checker.Report, error) {
	if s.checker == nil {
		return nil, fmt.Errorf("%w: checker not configured", checker.ErrCheckerUnavailable)
	}

	report, err := s.checker.CheckFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return report, nil
}
