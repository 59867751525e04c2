package views

import (
	"fmt"
	"strings"

	"github.com/hance08/numscribe/internal/compiler"
	"github.com/hance08/numscribe/internal/constants"
	"github.com/hance08/numscribe/internal/service"
	"github.com/hance08/numscribe/internal/ui"
	"github.com/pterm/pterm"
)

// RenderScriptDetail prints a saved script with its header fields, the
// script text, its compile warnings and the last checker output.
func RenderScriptDetail(detail *service.ScriptDetail) error {
	pterm.Println()
	ui.PrintL1Title("Script #%d", detail.ID)

	header := pterm.TableData{
		{"Ref", detail.Ref},
		{"Created", detail.CreatedTime().Format(constants.DateTimeFormat)},
		{"Summary", detail.Summary},
		{"Check", ui.CheckStatusLabel(detail.CheckStatus)},
	}
	if err := pterm.DefaultTable.WithData(header).Render(); err != nil {
		return err
	}

	RenderScript("Script", &compiler.Result{Script: detail.Script.Script, Warnings: detail.Warnings})

	if detail.CheckStatus != constants.CheckUnchecked && strings.TrimSpace(detail.CheckOutput) != "" {
		pterm.Println()
		ui.PrintL2Title("Checker output")
		pterm.Println(strings.TrimRight(detail.CheckOutput, "\n"))
	}
	return nil
}

// RenderDeletePreview summarizes a script before it is deleted.
func RenderDeletePreview(detail *service.ScriptDetail) error {
	pterm.Warning.Printf("About to delete script #%d:\n", detail.ID)

	info := pterm.TableData{
		{"Created", detail.CreatedTime().Format(constants.DateTimeFormat)},
		{"Summary", detail.Summary},
		{"Warnings", fmt.Sprint(len(detail.Warnings))},
	}
	return pterm.DefaultTable.WithData(info).Render()
}
