// Package cmd implements the cuetools command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rabidaudio/cuetools/config"
	"github.com/rabidaudio/cuetools/logger"
)

var cfg *config.Config

var (
	flagLogLevel string
	flagDBPath   string
)

var rootCmd = &cobra.Command{
	Use:   "cuetools",
	Short: "inspect, catalog and act on cue sheets",
	Long: `cuetools assembles cue sheets into tracklists and puts them to work:
print them, index a library into a catalog, tag split rips, or build
a FAT32 staging image for car head units.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}
		if flagDBPath != "" {
			cfg.DBPath = flagDBPath
		}
		logger.Init(logger.Config{Level: cfg.LogLevel, OutputPath: cfg.LogPath})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "path to the catalog database")
}

// Execute runs the CLI.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
