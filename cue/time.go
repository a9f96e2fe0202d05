package cue

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FramesPerSecond is the number of timing frames in one second of
// Red-Book audio. A frame is the smallest addressable unit on a CD.
const FramesPerSecond = 75

// ErrNegativeTime is returned by [Time.Sub] when the subtrahend is
// later than the minuend. Disc timestamps cannot be negative.
var ErrNegativeTime = errors.New("cue: negative time")

// Time is a disc timestamp in mm:ss:ff form. Seconds are always
// below 60 and frames below [FramesPerSecond]; arithmetic goes
// through the total-frame representation and re-normalizes, so a
// Time never holds out-of-range components.
type Time struct {
	Min   int
	Sec   int
	Frame int
}

// NewTime builds a Time from minutes, seconds and frames.
// The components are normalized, so NewTime(0, 90, 80) is 1:31:05.
func NewTime(min, sec, frame int) Time {
	return TimeFromFrames(int64(min)*60*FramesPerSecond + int64(sec)*FramesPerSecond + int64(frame))
}

// TimeFromFrames converts a flat frame count back to mm:ss:ff.
func TimeFromFrames(n int64) Time {
	return Time{
		Min:   int(n / (60 * FramesPerSecond)),
		Sec:   int(n % (60 * FramesPerSecond) / FramesPerSecond),
		Frame: int(n % FramesPerSecond),
	}
}

// TotalFrames returns the timestamp as a flat frame count.
func (t Time) TotalFrames() int64 {
	return int64(t.Min)*60*FramesPerSecond + int64(t.Sec)*FramesPerSecond + int64(t.Frame)
}

// Add returns t advanced by d.
func (t Time) Add(d Time) Time {
	return TimeFromFrames(t.TotalFrames() + d.TotalFrames())
}

// Sub returns the distance from u to t. It fails with
// [ErrNegativeTime] when u is later than t rather than wrapping.
func (t Time) Sub(u Time) (Time, error) {
	diff := t.TotalFrames() - u.TotalFrames()
	if diff < 0 {
		return Time{}, fmt.Errorf("%v - %v: %w", t, u, ErrNegativeTime)
	}
	return TimeFromFrames(diff), nil
}

// ParseTime parses an mm:ss:ff timestamp. The minute field may
// exceed two digits on long discs; seconds and frames must be in
// range for Red-Book timing.
func ParseTime(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Time{}, fmt.Errorf("cue: wrong time format: %q", s)
	}
	fields := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return Time{}, fmt.Errorf("cue: wrong time format: %q", s)
		}
		fields[i] = v
	}
	if fields[1] > 59 || fields[2] > FramesPerSecond-1 {
		return Time{}, fmt.Errorf("cue: time out of range: %q", s)
	}
	return Time{Min: fields[0], Sec: fields[1], Frame: fields[2]}, nil
}

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Min, t.Sec, t.Frame)
}
