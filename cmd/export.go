package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rabidaudio/cuetools/vfs"
)

var exportCmd = &cobra.Command{
	Use:   "export <sheet.cue> <image.img>",
	Short: "build a FAT32 disk image with one WAV slot per track",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, issues, err := parseSheet(args[0])
		if err != nil {
			return err
		}
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "warning: %v\n", issue)
		}

		fsys, err := vfs.Create()
		if err != nil {
			return err
		}
		defer fsys.Close()

		if err := fsys.LoadTracklist(list); err != nil {
			return err
		}
		return fsys.WriteTo(args[1])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
