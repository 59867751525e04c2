package history

import (
	"context"

	"github.com/hance08/numscribe/internal/checker"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/ui"
	"github.com/hance08/numscribe/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type CheckCommandRunner struct {
	svc *service.Service
}

func NewCheckCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "check <id|ref>",
		Short: "Re-run the checker on a saved script and record the verdict",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CheckCommandRunner{
				svc: svc,
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runner.Run(ctx, args[0])
		},
	}
}

func (r *CheckCommandRunner) Run(ctx context.Context, idOrRef string) error {
	detail, err := lookup(r.svc, idOrRef)
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Running checker...")
	report, err := r.svc.Script.Check(ctx, detail)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		return err
	}

	views.RenderCheckReport(report)
	pterm.Info.Printf("Script #%d is now %s\n", detail.ID, ui.CheckStatusLabel(detail.CheckStatus))

	if !report.Passed {
		return checker.ErrCheckFailed
	}
	return nil
}
