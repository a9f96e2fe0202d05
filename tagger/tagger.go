// Package tagger writes the metadata of an assembled cue sheet into
// the per-track audio files produced by splitting the rip.
package tagger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rabidaudio/cuetools/tracklist"
)

// Tags is the flat per-track metadata to write into one file.
type Tags struct {
	Title       string
	Artist      string
	Album       string
	AlbumArtist string
	Date        string
	Genre       string
	ISRC        string
	Catalog     string
	TrackNumber int
	TrackTotal  int
	DiscNumber  int
	DiscTotal   int
}

// BuildTags flattens disc- and track-level metadata for one track.
// Track-level fields win over disc-level ones.
func BuildTags(list *tracklist.Tracklist, track tracklist.Track, trackTotal int) Tags {
	artist := track.Performer
	if artist == "" {
		artist = list.Performer
	}
	return Tags{
		Title:       track.Title,
		Artist:      artist,
		Album:       list.Title,
		AlbumArtist: list.Performer,
		Date:        list.Date,
		Genre:       list.Genre,
		ISRC:        track.ISRC,
		Catalog:     list.Catalog,
		TrackNumber: int(track.Number),
		TrackTotal:  trackTotal,
		DiscNumber:  list.DiscNumber,
		DiscTotal:   list.TotalDiscs,
	}
}

// Apply tags every audio file in dir that matches a track of the
// tracklist. Tracks without a matching file are logged and skipped.
func Apply(list *tracklist.Tracklist, dir string, log *zap.Logger) error {
	total := 0
	for _, file := range list.Files {
		total += len(file.Tracks)
	}

	for _, file := range list.Files {
		for _, track := range file.Tracks {
			path, err := findTrackFile(dir, track.Number)
			if err != nil {
				log.Warn("no file for track",
					zap.Uint32("track", track.Number), zap.Error(err))
				continue
			}

			tags := BuildTags(list, track, total)
			switch strings.ToLower(filepath.Ext(path)) {
			case ".flac":
				err = writeFlacTags(path, tags)
			case ".mp3":
				err = writeMP3Tags(path, tags)
			}
			if err != nil {
				return fmt.Errorf("tagger: tag %s: %w", path, err)
			}
			log.Info("tagged", zap.String("path", path), zap.String("title", tags.Title))
		}
	}
	return nil
}

// findTrackFile locates the audio file for a track: the first
// directory entry whose name starts with the zero-padded track
// number and has a supported extension.
func findTrackFile(dir string, number uint32) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	prefix := fmt.Sprintf("%02d", number)
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".flac", ".mp3":
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("tagger: no audio file for track %v in %v", number, dir)
}
