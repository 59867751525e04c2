package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "USD/2", cfg.Defaults.Asset)
	assert.Equal(t, "numscript", cfg.Checker.Command)
	assert.Equal(t, []string{"check"}, cfg.Checker.Args)
	assert.Equal(t, 10*time.Second, cfg.Checker.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Compile.SkipValidation)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  path: /tmp/history.db
defaults:
  asset: EUR/2
checker:
  command: /usr/local/bin/numscript
  timeout: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("NUMSCRIBE_LOG_LEVEL", "debug")

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetEnvPrefix("NUMSCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/history.db", cfg.Database.Path)
	assert.Equal(t, "EUR/2", cfg.Defaults.Asset)
	assert.Equal(t, "/usr/local/bin/numscript", cfg.Checker.Command)
	assert.Equal(t, []string{"check"}, cfg.Checker.Args)
	assert.Equal(t, 3*time.Second, cfg.Checker.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.ConfigPath)
}
