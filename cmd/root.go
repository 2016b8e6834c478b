package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpusim/config"
)

var (
	configPath string // Path to config.yaml; empty means ./config.yaml
	logLevel   string // Log verbosity level, overrides log.level from config
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "cpusim",
	Short:         "Discrete-event CPU scheduling simulator (round robin and priority)",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// loadConfig reads the configuration and applies the log level.
func loadConfig(cmd *cobra.Command) (*config.SchedulerConfig, error) {
	cfg, err := config.LoadSchedulerConfig(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.LogLevel
	if cmd.Flags().Changed("log") {
		level = logLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(parsed)
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
