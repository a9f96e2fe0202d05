package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rabidaudio/cuetools/tracklist"
)

var showCmd = &cobra.Command{
	Use:   "show <sheet.cue>",
	Short: "print the tracklist assembled from a cue sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, issues, err := parseSheet(args[0])
		if err != nil {
			return err
		}

		printTracklist(list)
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "warning: %v\n", issue)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func parseSheet(path string) (*tracklist.Tracklist, []tracklist.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return tracklist.Parse(string(data))
}

func printTracklist(list *tracklist.Tracklist) {
	if list.Performer != "" || list.Title != "" {
		fmt.Printf("%s - %s\n", list.Performer, list.Title)
	}
	if list.Genre != "" {
		fmt.Printf("genre: %s", list.Genre)
		if list.Date != "" {
			fmt.Printf(" (%s)", list.Date)
		}
		fmt.Println()
	}
	if list.DiscNumber != 0 {
		fmt.Printf("disc %d of %d\n", list.DiscNumber, list.TotalDiscs)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, file := range list.Files {
		fmt.Fprintf(w, "\n%s (%v)\n", file.Name, file.Format)
		for _, track := range file.Tracks {
			duration := "--:--:--"
			if track.Duration != nil {
				duration = track.Duration.String()
			}
			start := "--:--:--"
			for _, idx := range track.Indexes {
				if idx.Number == 1 {
					start = idx.Time.String()
					break
				}
			}
			fmt.Fprintf(w, "  %02d\t%s\t%s\t%s\n", track.Number, start, duration, track.Title)
		}
	}
	w.Flush()
}
