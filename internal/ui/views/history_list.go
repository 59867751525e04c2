package views

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hance08/numscribe/internal/constants"
	"github.com/hance08/numscribe/internal/store"
	"github.com/hance08/numscribe/internal/ui"
	"github.com/pterm/pterm"
)

type HistoryListView struct {
	now func() time.Time
}

func NewHistoryListView() *HistoryListView {
	return &HistoryListView{now: time.Now}
}

func (v *HistoryListView) Render(scripts []*store.Script, limit int) error {
	if len(scripts) == 0 {
		pterm.Warning.Println("No saved scripts found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent scripts (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Created", "Summary", "Check", "Ref"},
	}

	for _, s := range scripts {
		created := time.Unix(s.CreatedAt, 0)
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", s.ID),
			fmt.Sprintf("%s (%s)", created.Format(constants.DateTimeFormat), humanize.RelTime(created, v.now(), "ago", "from now")),
			s.Summary,
			ui.CheckStatusLabel(s.CheckStatus),
			pterm.Gray(s.Ref),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d scripts\n", len(scripts))
	return nil
}
