package history

import (
	"github.com/hance08/numscribe/internal/service"
	"github.com/spf13/cobra"
)

// NewHistoryCmd groups the commands that work on saved scripts.
func NewHistoryCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"h"},
		Short:   "Manage saved scripts (alias: h)",
		Long:    "Manage saved scripts: list them, show details, re-run the checker or delete them.",
	}

	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))
	cmd.AddCommand(NewCheckCmd(svc))

	return cmd
}
