package history

import (
	"github.com/hance08/numscribe/internal/constants"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Limit int
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved scripts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultHistoryLimit, "Maximum number of scripts to display")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	scripts, err := r.svc.Script.ListScripts(r.flags.Limit)
	if err != nil {
		return err
	}

	return views.NewHistoryListView().Render(scripts, r.flags.Limit)
}
