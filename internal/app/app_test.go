package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/numscribe/internal/config"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/data/numscribe.db", filepath.Join(home, "data/numscribe.db")},
		{"/var/lib/numscribe.db", "/var/lib/numscribe.db"},
		{"relative.db", "relative.db"},
		{"~other/x", "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	assert.Equal(t, pterm.LogLevelDebug, NewLogger("DEBUG").Level)
	assert.Equal(t, pterm.LogLevelWarn, NewLogger("warning").Level)
	assert.Equal(t, pterm.LogLevelInfo, NewLogger("loud").Level)
}

func TestNewApp_OpensConfiguredDatabase(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "history.db")

	application, cleanup, err := NewApp(cfg, os.DirFS("../.."))
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, application.Service.Script)
	scripts, err := application.Service.Script.ListScripts(10)
	require.NoError(t, err)
	assert.Empty(t, scripts)

	_, err = os.Stat(cfg.Database.Path)
	assert.NoError(t, err)
}
