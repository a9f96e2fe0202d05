package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rabidaudio/cuetools/catalog"
	"github.com/rabidaudio/cuetools/logger"
	"github.com/rabidaudio/cuetools/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "index every cue sheet under a directory into the catalog",
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

		return scanner.New(store, logger.L()).ScanDir(dir)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the scanned cue sheets in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		sheets, err := store.Sheets()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, sheet := range sheets {
			tracks, err := store.Tracks(sheet.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%d tracks\t%s\n",
				sheet.Performer, sheet.Title, len(tracks), sheet.Path)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
}
