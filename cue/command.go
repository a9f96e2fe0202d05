package cue

import "fmt"

// FileFormat is the data layout of a FILE referenced by a cue sheet.
type FileFormat int

const (
	FormatWave FileFormat = iota
	FormatBinary
	FormatMotorola
	FormatAiff
	FormatMp3
)

func parseFileFormat(s string) (FileFormat, error) {
	switch s {
	case "WAVE":
		return FormatWave, nil
	case "BINARY":
		return FormatBinary, nil
	case "MOTOROLA":
		return FormatMotorola, nil
	case "AIFF":
		return FormatAiff, nil
	case "MP3":
		return FormatMp3, nil
	default:
		return 0, fmt.Errorf("cue: unknown file format %q", s)
	}
}

func (f FileFormat) String() string {
	switch f {
	case FormatWave:
		return "WAVE"
	case FormatBinary:
		return "BINARY"
	case FormatMotorola:
		return "MOTOROLA"
	case FormatAiff:
		return "AIFF"
	case FormatMp3:
		return "MP3"
	default:
		return fmt.Sprintf("unknown file format: %v", int(f))
	}
}

// TrackType is the sector mode of a TRACK.
type TrackType int

const (
	TypeAudio TrackType = iota
	TypeCdg
	TypeMode1_2048
	TypeMode1_2352
	TypeMode2_2336
	TypeMode2_2352
	TypeCdi2336
	TypeCdi2352
)

func parseTrackType(s string) (TrackType, error) {
	switch s {
	case "AUDIO":
		return TypeAudio, nil
	case "CDG":
		return TypeCdg, nil
	case "MODE1/2048":
		return TypeMode1_2048, nil
	case "MODE1/2352":
		return TypeMode1_2352, nil
	case "MODE2/2336":
		return TypeMode2_2336, nil
	case "MODE2/2352":
		return TypeMode2_2352, nil
	case "CDI/2336":
		return TypeCdi2336, nil
	case "CDI/2352":
		return TypeCdi2352, nil
	default:
		return 0, fmt.Errorf("cue: unknown track type %q", s)
	}
}

func (t TrackType) String() string {
	switch t {
	case TypeAudio:
		return "AUDIO"
	case TypeCdg:
		return "CDG"
	case TypeMode1_2048:
		return "MODE1/2048"
	case TypeMode1_2352:
		return "MODE1/2352"
	case TypeMode2_2336:
		return "MODE2/2336"
	case TypeMode2_2352:
		return "MODE2/2352"
	case TypeCdi2336:
		return "CDI/2336"
	case TypeCdi2352:
		return "CDI/2352"
	default:
		return fmt.Sprintf("unknown track type: %v", int(t))
	}
}

// Command is one directive of a cue sheet. The concrete types below
// are the only implementations.
type Command interface {
	command()
}

// Catalog is the disc's 13-digit UPC/EAN media catalog number.
type Catalog string

// Performer names the performer of the disc or of a single track,
// depending on where it appears.
type Performer string

// Title names the disc or a single track.
type Title string

// Songwriter names the writer of the disc or track.
type Songwriter string

// Isrc is a track's International Standard Recording Code.
type Isrc string

// CDTextFile references an external CD-TEXT binary file.
type CDTextFile string

// Rem is a remark. Rippers store structured metadata here
// (GENRE, DATE, DISCID, ...) so the key is kept separate.
type Rem struct {
	Key   string
	Value string
}

// File introduces a data file and the run of tracks stored in it.
type File struct {
	Name   string
	Format FileFormat
}

// Track starts a new track of the given number and sector mode.
type Track struct {
	Number uint32
	Type   TrackType
}

// Index is an absolute timestamp marker within the current file.
// Number 0 conventionally marks the pregap, 1 the track start.
type Index struct {
	Number uint32
	Time   Time
}

// Pregap is a silent lead-in before the current track, given as a
// duration rather than an absolute time.
type Pregap struct {
	Length Time
}

// Postgap is silence appended after the current track.
type Postgap struct {
	Length Time
}

// Flags carries subcode flags (DCP, 4CH, PRE, SCMS) for the
// current track.
type Flags []string

func (Catalog) command()    {}
func (Performer) command()  {}
func (Title) command()      {}
func (Songwriter) command() {}
func (Isrc) command()       {}
func (CDTextFile) command() {}
func (Rem) command()        {}
func (File) command()       {}
func (Track) command()      {}
func (Index) command()      {}
func (Pregap) command()     {}
func (Postgap) command()    {}
func (Flags) command()      {}
