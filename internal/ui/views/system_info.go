package views

import (
	"strings"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath     string
	DBPath         string
	DBExists       bool
	DefaultAsset   string
	CheckerCommand string
	CheckerArgs    []string
	CheckerFound   bool
	AppDataDir     string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	checkerStatus := pterm.Green("Found")
	if !data.CheckerFound {
		checkerStatus = pterm.Red("Not on PATH (check commands unavailable)")
	}

	checker := strings.TrimSpace(data.CheckerCommand + " " + strings.Join(data.CheckerArgs, " "))

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Default Asset", data.DefaultAsset},
		{"Checker Command", checker + " <file>"},
		{"Checker Status", checkerStatus},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
