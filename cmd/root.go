package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/numscribe/cmd/history"
	"github.com/hance08/numscribe/internal/app"
	"github.com/hance08/numscribe/internal/config"
	"github.com/hance08/numscribe/internal/errhandler"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// --config has to be known before the app is wired, which happens
	// before cobra parses the command line.
	cfgFile = scanConfigFlag(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := NewRootCmd(application)

	code := errhandler.HandleError(rootCmd.Execute())
	cleanup()
	os.Exit(code)
}

func NewRootCmd(application *app.App) *cobra.Command {
	svc := application.Service

	rootCmd := &cobra.Command{
		Use:   "numscribe",
		Short: "numscribe compiles transaction intents into Numscript",
		Long: `numscribe turns a structured transaction intent (postings, overdraft
policies, split rules and metadata) into Numscript source, and keeps a local
history of the scripts it produced.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", cfgFile, "set the config file path")

	rootCmd.AddCommand(NewCompileCmd(svc))
	rootCmd.AddCommand(NewNewCmd(svc))
	rootCmd.AddCommand(NewCheckCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc))
	rootCmd.AddCommand(history.NewHistoryCmd(svc))

	return rootCmd
}

func scanConfigFlag(args []string) string {
	flags := pflag.NewFlagSet("numscribe", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)

	path := flags.StringP("config", "c", "", "")
	_ = flags.Parse(args)
	return *path
}

func initConfig() error {
	// a missing .env is the normal case
	_ = godotenv.Load()

	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("NUMSCRIBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	cfg = loaded

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
