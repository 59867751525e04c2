package ui

import (
	"fmt"

	"github.com/hance08/numscribe/internal/constants"
	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...any) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintL2Title(format string, a ...any) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	style.Println(fmt.Sprintf("# %s   ", fmt.Sprintf(format, a...)))
}

// CheckStatusLabel colours the stored checker verdict of a script.
func CheckStatusLabel(status int) string {
	switch status {
	case constants.CheckPassed:
		return pterm.Green("Passed")
	case constants.CheckFailed:
		return pterm.Red("Failed")
	default:
		return pterm.Gray("Unchecked")
	}
}
