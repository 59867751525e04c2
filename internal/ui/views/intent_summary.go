package views

import (
	"fmt"
	"strings"

	"github.com/hance08/numscribe/internal/compiler"
	"github.com/hance08/numscribe/internal/model"
	"github.com/hance08/numscribe/internal/ui"
	"github.com/hance08/numscribe/internal/utils"
	"github.com/pterm/pterm"
)

// RenderIntentSummary prints the postings and metadata of an intent as tables.
func RenderIntentSummary(intent *model.Intent) error {
	pterm.Println()
	ui.PrintL2Title("Intent: %s", intent.Summary)

	postings := pterm.TableData{
		{"#", "Amount", "Source", "Destination"},
	}
	for i, p := range intent.Postings {
		postings = append(postings, []string{
			fmt.Sprintf("%d", i+1),
			utils.FormatAssetAmount(p.Asset, p.Amount),
			compiler.RenderSource(p),
			destinationSummary(p),
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(postings).
		Render(); err != nil {
		return err
	}

	if len(intent.Metadata) == 0 {
		return nil
	}

	meta := pterm.TableData{{"Key", "Value"}}
	for _, m := range intent.Metadata {
		meta = append(meta, []string{m.Key, m.Value})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(meta).
		Render()
}

func destinationSummary(p model.Posting) string {
	if p.DestinationType != model.DestinationSplit {
		return compiler.FormatAccount(p.SimpleDestination)
	}

	parts := make([]string, 0, len(p.SplitRules))
	for _, r := range p.SplitRules {
		switch r.AmountMode {
		case model.AmountFraction:
			parts = append(parts, fmt.Sprintf("%s: %s", compiler.FormatAccount(r.Target), r.Value))
		case model.AmountMax:
			parts = append(parts, fmt.Sprintf("%s: up to %s", compiler.FormatAccount(r.Target), utils.FormatAssetAmount(p.Asset, r.Value)))
		default:
			parts = append(parts, fmt.Sprintf("%s: %s", compiler.FormatAccount(r.Target), r.AmountMode))
		}
	}
	return strings.Join(parts, "\n")
}
