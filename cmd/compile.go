package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/hance08/numscribe/internal/compiler"
	"github.com/hance08/numscribe/internal/loader"
	"github.com/hance08/numscribe/internal/model"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type compileFlags struct {
	Output string
	Save   bool
	Check  bool
	Quiet  bool
}

type CompileCommandRunner struct {
	svc   *service.Service
	flags *compileFlags
	cmd   *cobra.Command
}

func NewCompileCmd(svc *service.Service) *cobra.Command {
	flags := &compileFlags{}

	cmd := &cobra.Command{
		Use:   "compile <intent-file|->",
		Short: "Compile an intent file into Numscript",
		Long: `Compile a JSON or YAML intent into Numscript.

The format is chosen by file extension (.yaml/.yml for YAML, anything else is
JSON). Use "-" to read a JSON intent from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CompileCommandRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Write the script to this file")
	cmd.Flags().BoolVarP(&flags.Save, "save", "s", false, "Save the script to the local history")
	cmd.Flags().BoolVar(&flags.Check, "check", false, "Run the external checker on the compiled script")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Print only the script text")

	return cmd
}

func (r *CompileCommandRunner) Run(ctx context.Context, path string) error {
	intent, err := loader.LoadIntent(path)
	if err != nil {
		return err
	}

	res, err := r.svc.Script.Compile(intent)
	if err != nil {
		return err
	}

	if err := r.emit(intent, res); err != nil {
		return err
	}

	var detail *service.ScriptDetail
	if r.flags.Save {
		detail, err = r.svc.Script.Save(intent, res)
		if err != nil {
			return err
		}
		r.info().Printf("Saved as script #%d (%s)\n", detail.ID, detail.Ref)
	}

	if r.flags.Check {
		return runCheck(ctx, r.svc, res.Script, detail)
	}
	return nil
}

func (r *CompileCommandRunner) emit(intent *model.Intent, res *compiler.Result) error {
	if r.flags.Output != "" {
		if err := os.WriteFile(r.flags.Output, []byte(res.Script), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", r.flags.Output, err)
		}
		r.info().Printf("Script written to %s\n", r.flags.Output)
		r.warnings(res)
		return nil
	}

	if r.flags.Quiet {
		fmt.Fprint(r.cmd.OutOrStdout(), res.Script)
		r.warnings(res)
		return nil
	}

	if err := views.RenderIntentSummary(intent); err != nil {
		return err
	}
	views.RenderScript("Numscript", res)
	return nil
}

// in quiet mode stdout carries only the script, so notices go to stderr
func (r *CompileCommandRunner) info() *pterm.PrefixPrinter {
	if r.flags.Quiet {
		return pterm.Info.WithWriter(os.Stderr)
	}
	return &pterm.Info
}

func (r *CompileCommandRunner) warnings(res *compiler.Result) {
	if !res.HasWarnings() {
		return
	}

	printer := pterm.Warning
	if r.flags.Quiet {
		printer = *pterm.Warning.WithWriter(os.Stderr)
	}
	for _, w := range res.Warnings {
		printer.Printf("%s [%s]\n", w.String(), w.Code)
	}
}
