package history

import (
	"errors"
	"fmt"

	"github.com/hance08/numscribe/internal/loader"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/store"
	"github.com/hance08/numscribe/internal/ui/views"
	"github.com/spf13/cobra"
)

type showFlags struct {
	Intent bool
	Raw    bool
}

type ShowCommandRunner struct {
	svc   *service.Service
	flags *showFlags
	cmd   *cobra.Command
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <id|ref>",
		Short: "Show a saved script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.Intent, "intent", false, "Also print the intent the script was compiled from, as YAML")
	cmd.Flags().BoolVar(&flags.Raw, "raw", false, "Print only the script text")

	return cmd
}

func (r *ShowCommandRunner) Run(idOrRef string) error {
	detail, err := lookup(r.svc, idOrRef)
	if err != nil {
		return err
	}

	if r.flags.Raw {
		fmt.Fprint(r.cmd.OutOrStdout(), detail.Script.Script)
		return nil
	}

	if err := views.RenderScriptDetail(detail); err != nil {
		return err
	}

	if !r.flags.Intent {
		return nil
	}

	intent, err := r.svc.Script.Intent(detail)
	if err != nil {
		return err
	}
	data, err := loader.MarshalIntent(intent, loader.FormatYAML)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.cmd.OutOrStdout())
	fmt.Fprint(r.cmd.OutOrStdout(), string(data))
	return nil
}

func lookup(svc *service.Service, idOrRef string) (*service.ScriptDetail, error) {
	detail, err := svc.Script.GetScript(idOrRef)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, fmt.Errorf("no saved script matches %q", idOrRef)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get script: %w", err)
	}
	return detail, nil
}
