package main

import (
	"github.com/aleister1102/embedkit/internal/config"
	"github.com/aleister1102/embedkit/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

// app holds what every sub-command needs once the root pre-run has finished
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *logger.Logger
}

func (a *app) log() zerolog.Logger {
	if a.logger == nil {
		return zerolog.Nop()
	}
	return *a.logger.GetZerolog()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "embedkit",
		Short:         "Build Discord messages from YAML or JSON documents",
		Long:          "embedkit renders message documents into Discord webhook request bodies, checks embeds against Discord limits and watches documents while you edit them.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.logger != nil {
				return a.logger.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to embedkit.yaml or embedkit.json (default: $"+config.ConfigPathEnvVar+", then ./embedkit.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newColorsCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	return rootCmd
}

// init loads and validates the configuration, then builds the logger
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath, zerolog.Nop())
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.LogLevel = a.logLevel
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	l, err := logger.NewLoggerBuilder().
		WithConsoleOutput(cmd.ErrOrStderr()).
		WithConfig(cfg.Log).
		Build()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = l
	lg := a.log()
	lg.Debug().Str("command", cmd.Name()).Msg("Configuration loaded")
	return nil
}
