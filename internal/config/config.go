package config

import (
	"fmt"
	"time"

	"github.com/hance08/numscribe/internal/constants"
	"github.com/spf13/viper"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Checker    CheckerConfig  `mapstructure:"checker"`
	Compile    CompileConfig  `mapstructure:"compile"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Asset string `mapstructure:"asset"`
}

// CheckerConfig describes the external script checker, run as
// "<command> <args...> <script-file>".
type CheckerConfig struct {
	Command string        `mapstructure:"command"`
	Args    []string      `mapstructure:"args"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CompileConfig struct {
	SkipValidation bool `mapstructure:"skip_validation"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	timeout, _ := time.ParseDuration(constants.DefaultCheckTimeout)

	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Asset: constants.DefaultAsset},
		Checker: CheckerConfig{
			Command: "numscript",
			Args:    []string{"check"},
			Timeout: timeout,
		},
		Compile: CompileConfig{SkipValidation: false},
		Log:     LogConfig{Level: "info"},
	}
}

// SetDefaults registers the default values on v, so they are written to a
// freshly created config file and used for keys missing from it.
func SetDefaults(v *viper.Viper) {
	d := NewDefault()

	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("defaults.asset", d.Defaults.Asset)
	v.SetDefault("checker.command", d.Checker.Command)
	v.SetDefault("checker.args", d.Checker.Args)
	v.SetDefault("checker.timeout", d.Checker.Timeout.String())
	v.SetDefault("compile.skip_validation", d.Compile.SkipValidation)
	v.SetDefault("log.level", d.Log.Level)
}

// Load decodes the settings held by v on top of the defaults.
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	return cfg, nil
}
