package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rabidaudio/cuetools/catalog"
	"github.com/rabidaudio/cuetools/logger"
	"github.com/rabidaudio/cuetools/scanner"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "scan a directory, then keep rescanning sheets as they change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := cfg.LibraryDir
		if len(args) > 0 {
			dir = args[0]
		}

		store, err := catalog.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		s := scanner.New(store, logger.L())
		if err := s.ScanDir(dir); err != nil {
			return err
		}
		return s.Watch(ctx, dir, cfg.SettleDelay)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
