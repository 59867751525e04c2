package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hance08/numscribe/internal/loader"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/ui"
	"github.com/hance08/numscribe/internal/ui/prompts"
	"github.com/hance08/numscribe/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type newFlags struct {
	Output     string
	SaveIntent string
}

type NewCommandRunner struct {
	svc   *service.Service
	flags *newFlags
}

func NewNewCmd(svc *service.Service) *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build an intent interactively and compile it",
		Long: `Walk through an interactive form to describe a transaction: its summary,
each posting (source, overdraft, asset, amount, destination or split rules)
and optional metadata. The result is compiled, previewed and can be saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &NewCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the script to this file")
	cmd.Flags().StringVar(&flags.SaveIntent, "save-intent", "", "Also write the intent to this file (.json or .yaml)")

	return cmd
}

func (r *NewCommandRunner) Run(ctx context.Context) error {
	ui.PrintL1Title("New transaction intent")

	intent, err := prompts.PromptIntent(r.svc.Config.Defaults.Asset)
	if err != nil {
		return err
	}

	if err := views.RenderIntentSummary(intent); err != nil {
		return err
	}

	res, err := r.svc.Script.Compile(intent)
	if err != nil {
		return err
	}
	views.RenderScript("Numscript", res)
	pterm.Println()

	if r.flags.SaveIntent != "" {
		data, err := loader.MarshalIntent(intent, loader.FormatForPath(r.flags.SaveIntent))
		if err != nil {
			return err
		}
		if err := os.WriteFile(r.flags.SaveIntent, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", r.flags.SaveIntent, err)
		}
		pterm.Info.Printf("Intent written to %s\n", r.flags.SaveIntent)
	}

	if r.flags.Output != "" {
		if err := os.WriteFile(r.flags.Output, []byte(res.Script), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", r.flags.Output, err)
		}
		pterm.Info.Printf("Script written to %s\n", r.flags.Output)
	}

	save, err := prompts.PromptConfirm("Save this script to history?", true)
	if err != nil {
		return err
	}
	if !save {
		pterm.Info.Println("Script not saved")
		return nil
	}

	detail, err := r.svc.Script.Save(intent, res)
	if err != nil {
		return err
	}
	pterm.Success.Printf("Saved as script #%d (%s)\n", detail.ID, detail.Ref)

	if !r.checkerConfigured() {
		return nil
	}

	check, err := prompts.PromptConfirm("Run the checker on it now?", false)
	if err != nil || !check {
		return err
	}
	return runCheck(ctx, r.svc, res.Script, detail)
}

func (r *NewCommandRunner) checkerConfigured() bool {
	return strings.TrimSpace(r.svc.Config.Checker.Command) != ""
}
