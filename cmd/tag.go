package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rabidaudio/cuetools/logger"
	"github.com/rabidaudio/cuetools/tagger"
)

var flagTagDir string

var tagCmd = &cobra.Command{
	Use:   "tag <sheet.cue>",
	Short: "write cue sheet metadata into the split audio files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, issues, err := parseSheet(args[0])
		if err != nil {
			return err
		}
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "warning: %v\n", issue)
		}

		dir := flagTagDir
		if dir == "" {
			dir = filepath.Dir(args[0])
		}
		return tagger.Apply(list, dir, logger.L())
	},
}

func init() {
	tagCmd.Flags().StringVar(&flagTagDir, "dir", "", "directory holding the split tracks (defaults to the sheet's directory)")
	rootCmd.AddCommand(tagCmd)
}
