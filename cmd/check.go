package cmd

import (
	"context"

	"github.com/hance08/numscribe/internal/checker"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type CheckCommandRunner struct {
	svc *service.Service
}

func NewCheckCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "check <script-file>",
		Short: "Run the external checker on a Numscript file",
		Long: `Run the configured Numscript checker (checker.command in the config file)
against a script on disk and report its verdict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CheckCommandRunner{
				svc: svc,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}
}

func (r *CheckCommandRunner) Run(ctx context.Context, path string) error {
	report, err := withSpinner(func() (*checker.Report, error) {
		return r.svc.Script.CheckFile(orBackground(ctx), path)
	})
	if err != nil {
		return err
	}
	return verdict(report)
}

// runCheck hands a script to the checker, recording the verdict when the
// script is already stored.
func runCheck(ctx context.Context, svc *service.Service, script string, detail *service.ScriptDetail) error {
	ctx = orBackground(ctx)

	report, err := withSpinner(func() (*checker.Report, error) {
		if detail != nil {
			return svc.Script.Check(ctx, detail)
		}
		return svc.Script.CheckScript(ctx, script)
	})
	if err != nil {
		return err
	}
	return verdict(report)
}

func verdict(report *checker.Report) error {
	pterm.Println()
	views.RenderCheckReport(report)
	if !report.Passed {
		return checker.ErrCheckFailed
	}
	return nil
}

func withSpinner(fn func() (*checker.Report, error)) (*checker.Report, error) {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Running checker...")
	report, err := fn()
	if spinner != nil {
		_ = spinner.Stop()
	}
	return report, err
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
