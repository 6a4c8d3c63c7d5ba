package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gabe/ecopatrol/internal/config"
	"github.com/gabe/ecopatrol/internal/display"
	"github.com/gabe/ecopatrol/internal/logging"
	"github.com/gabe/ecopatrol/internal/storage"
)

var (
	flagConfig   string
	flagDataDir  string
	flagLogLevel string
	flagNoColor  bool
)

// cfg is loaded before every command runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "eco",
	Short: "EcoPatrol - municipal environmental report dashboard",
	Long: `Collect citizen reports about air, water, waste and noise problems,
follow them through moderation and see where and how often they happen.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func defaultConfigPath() string {
	return filepath.Join(config.DefaultDir(), "config.toml")
}

func loadConfig() error {
	path := flagConfig
	if path == "" {
		path = defaultConfigPath()
	}

	loaded, err := config.LoadOrCreate(path)
	if err != nil {
		return err
	}
	if flagDataDir != "" {
		loaded.Data.Dir = flagDataDir
	}
	if flagLogLevel != "" {
		loaded.Logging.Level = flagLogLevel
	}
	if err := logging.Setup(loaded.Logging, os.Stderr); err != nil {
		return err
	}

	cfg = loaded
	return nil
}

func openStore() (*storage.ReportStore, error) {
	return storage.NewReportStore(cfg.StorePath())
}

func displayOptions() display.Options {
	opts := display.DefaultOptions()
	opts.ColorEnabled = !flagNoColor
	return opts
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/ecopatrol/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Override the data directory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}
