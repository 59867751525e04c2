package views

import (
	"strings"

	"github.com/hance08/numscribe/internal/checker"
	"github.com/hance08/numscribe/internal/compiler"
	"github.com/hance08/numscribe/internal/ui"
	"github.com/pterm/pterm"
)

// RenderScript prints a compiled script in a box followed by its warnings.
func RenderScript(title string, res *compiler.Result) {
	pterm.Println()
	ui.PrintL2Title("%s", title)

	pterm.DefaultBox.
		WithLeftPadding(1).
		WithRightPadding(1).
		Println(strings.TrimRight(res.Script, "\n"))

	if res.HasWarnings() {
		RenderWarnings(res.Warnings)
	}
}

func RenderWarnings(warnings []compiler.Warning) {
	if len(warnings) == 0 {
		return
	}

	pterm.Println()
	for _, w := range warnings {
		pterm.Warning.Printf("%s [%s]\n", w.String(), w.Code)
	}
}

// RenderCheckReport prints the external checker's verdict and diagnostics.
func RenderCheckReport(report *checker.Report) {
	if report.Passed {
		pterm.Success.Println("Script accepted by the checker")
	} else {
		pterm.Error.Println("Script rejected by the checker")
	}

	if len(report.Diagnostics) == 0 {
		return
	}

	items := make([]pterm.BulletListItem, 0, len(report.Diagnostics))
	for _, d := range report.Diagnostics {
		items = append(items, pterm.BulletListItem{Level: 0, Text: d})
	}
	_ = pterm.DefaultBulletList.WithItems(items).Render()
}
