package tracklist

import (
	"fmt"

	"github.com/rabidaudio/cuetools/cue"
)

// File is one data file of a tracklist and the tracks stored in it.
type File struct {
	Name   string
	Format cue.FileFormat
	Tracks []Track
}

// consumeFile reads one FILE directive and the run of tracks after
// it, then fills in track durations from neighbouring index times.
// It stops without error at the first directive that is not a TRACK
// (or at end of input). A failure inside a track aborts the whole
// file. Underflow during duration inference is not fatal: the
// duration is left unset and reported through issues.
func (a *assembler) consumeFile() (*File, error) {
	head, ok := a.c.peek().(cue.File)
	if !ok {
		return nil, ErrExpectedFile
	}
	a.c.advance()

	file := &File{Name: head.Name, Format: head.Format}

	// anchor carries the previous track's last index time across
	// iterations. A track without indexes clears it, which breaks
	// the inference chain on both sides.
	var anchor *cue.Time

	for {
		if _, ok := a.c.peek().(cue.Track); !ok {
			break
		}
		track, err := consumeTrack(&a.c)
		if err != nil {
			return nil, err
		}
		anchor = a.inferDuration(file, *track, anchor)
		file.Tracks = append(file.Tracks, *track)
	}
	return file, nil
}

// inferDuration applies the per-track duration rule and returns the
// anchor to carry into the next step. With an anchor set (the
// previous track's last index time), the previous track's duration
// is the distance from the anchor to this track's first index time.
// The current track's last index time becomes the new anchor. The
// final track of a file never receives a duration this way: nothing
// follows it to supply a stop time.
func (a *assembler) inferDuration(file *File, track Track, anchor *cue.Time) *cue.Time {
	if len(track.Indexes) == 0 {
		return nil
	}

	stop := track.Indexes[0].Time
	if anchor != nil && len(file.Tracks) > 0 {
		prev := &file.Tracks[len(file.Tracks)-1]
		duration, err := stop.Sub(*anchor)
		if err != nil {
			a.report(fmt.Errorf("tracklist: duration of track %d: %w", prev.Number, err))
		} else {
			prev.Duration = &duration
		}
	}

	last := track.Indexes[len(track.Indexes)-1].Time
	return &last
}
