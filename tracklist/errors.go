package tracklist

import "fmt"

// AssembleError identifies a structural problem found while turning
// a directive sequence into a tracklist.
type AssembleError int

const (
	// ErrExpectedTrack means the track assembler was invoked with the
	// cursor not at a TRACK directive. This signals misuse by the
	// caller, not bad input: callers must peek a TRACK first.
	ErrExpectedTrack AssembleError = 1

	// ErrExpectedFile means the file assembler was invoked with the
	// cursor not at a FILE directive.
	ErrExpectedFile AssembleError = 2

	// ErrMissingIndexAfterPregap means a PREGAP directive was the last
	// directive of its track, or was not immediately followed by an
	// INDEX directive. The pregap's position can only be synthesized
	// relative to the index after it.
	ErrMissingIndexAfterPregap AssembleError = 3
)

func (e AssembleError) Error() string {
	return fmt.Sprintf("tracklist: %v", e.name())
}

func (e AssembleError) name() string {
	switch e {
	case ErrExpectedTrack:
		return "expected a TRACK directive"
	case ErrExpectedFile:
		return "expected a FILE directive"
	case ErrMissingIndexAfterPregap:
		return "PREGAP not followed by an INDEX directive"
	default:
		return fmt.Sprintf("unknown error code: %v", int(e))
	}
}

// Issue is a recoverable problem recorded while assembling. The
// assembler never fails outright: when a file cannot be consumed the
// files collected so far are kept and the cause lands here, so
// callers that care can still see what was skipped.
type Issue struct {
	Pos int // index into the directive sequence where assembly stopped
	Err error
}

func (i Issue) Error() string {
	return fmt.Sprintf("directive %d: %v", i.Pos, i.Err)
}

func (i Issue) Unwrap() error { return i.Err }
