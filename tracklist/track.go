package tracklist

import (
	"fmt"

	"github.com/rabidaudio/cuetools/cue"
)

// Index is a timestamp marker attached to a track. Number 0
// conventionally marks the pregap, 1 the track's official start.
type Index struct {
	Number uint32
	Time   cue.Time
}

// Track is one track of a file. Number is whatever the sheet stated;
// nothing enforces that numbers are contiguous.
type Track struct {
	Number    uint32
	Type      cue.TrackType
	Title     string
	Performer string
	ISRC      string

	// Indexes holds the track's index markers in source order.
	// A pregap directive is folded in as a synthesized index 0.
	Indexes []Index

	// Duration is filled in while assembling the following track,
	// when the neighbouring index times allow it. It stays nil for
	// the last track of a file: a cue sheet alone does not say where
	// that track ends.
	Duration *cue.Time
}

// consumeTrack reads one TRACK directive and the run of track-scoped
// directives after it (PERFORMER, TITLE, ISRC, INDEX, PREGAP, in any
// order, repeated). It stops at the first directive outside that set,
// leaving the cursor there. Repeated scalar directives keep the last
// occurrence.
func consumeTrack(c *cursor) (*Track, error) {
	head, ok := c.peek().(cue.Track)
	if !ok {
		return nil, ErrExpectedTrack
	}
	c.advance()

	track := &Track{Number: head.Number, Type: head.Type}

	for !c.done() {
		switch cmd := c.peek().(type) {
		case cue.Performer:
			track.Performer = string(cmd)
			c.advance()
		case cue.Title:
			track.Title = string(cmd)
			c.advance()
		case cue.Isrc:
			track.ISRC = string(cmd)
			c.advance()
		case cue.Pregap:
			// A pregap is a duration, not a position. Anchor it to
			// the index that follows: the pregap starts that many
			// frames before the track's first real index.
			next, ok := c.peekAt(1).(cue.Index)
			if !ok {
				return nil, ErrMissingIndexAfterPregap
			}
			start, err := next.Time.Sub(cmd.Length)
			if err != nil {
				return nil, fmt.Errorf("tracklist: pregap of track %d: %w", track.Number, err)
			}
			track.Indexes = append(track.Indexes, Index{Number: 0, Time: start})
			// Drop the PREGAP itself; the INDEX after it is consumed
			// normally on the next pass.
			c.advance()
		case cue.Index:
			track.Indexes = append(track.Indexes, Index{Number: cmd.Number, Time: cmd.Time})
			c.advance()
		default:
			return track, nil
		}
	}
	return track, nil
}
