package history

import (
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/ui"
	"github.com/hance08/numscribe/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

type DeleteCommandRunner struct {
	svc   *service.Service
	flags *deleteFlags
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <id|ref>",
		Short: "Delete a saved script",
		Long:  `Delete a saved script and its warnings. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &DeleteCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Delete without asking for confirmation")

	return cmd
}

func (r *DeleteCommandRunner) Run(idOrRef string) error {
	detail, err := lookup(r.svc, idOrRef)
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		if err := views.RenderDeletePreview(detail); err != nil {
			return err
		}
		pterm.Warning.Println("This action cannot be undone!")

		confirmed, err := ui.ConfirmDestructive("Do you want to delete this script?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Script.DeleteScript(detail.ID); err != nil {
		return err
	}

	pterm.Success.Printf("Script #%d deleted successfully\n", detail.ID)
	return nil
}
