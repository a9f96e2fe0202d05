package tracklist

import (
	"testing"

	"github.com/rabidaudio/cuetools/cue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marillionSheet = `REM GENRE "Progressive Rock"
REM DATE 1985
REM DISCID DC0E6811
REM COMMENT "ExactAudioCopy v0.95b3"
REM DISCNUMBER 2
REM TOTALDISCS 2
CATALOG 0724349703629
PERFORMER "Marillion"
TITLE "Misplaced Childhood (CD2: Demo)"
FILE "Marillion - Misplaced Childhood (CD2).flac" WAVE
  TRACK 01 AUDIO
    TITLE "Lady Nina"
    PERFORMER "Marillion"
    ISRC GBAYE9801904
    INDEX 01 00:00:00
  TRACK 02 AUDIO
    TITLE "Freaks"
    PERFORMER "Marillion"
    ISRC GBAYE9801905
    INDEX 00 05:47:50
    INDEX 01 05:50:10
  TRACK 03 AUDIO
    TITLE "Kayleigh (Alternate Mix)"
    PERFORMER "Marillion"
    ISRC GBAYE9801906
    INDEX 00 09:55:60
    INDEX 01 09:58:20
  TRACK 04 AUDIO
    TITLE "Lavender Blue"
    PERFORMER "Marillion"
    ISRC GBAYE9801907
    INDEX 00 13:57:60
    INDEX 01 14:01:72
  TRACK 05 AUDIO
    TITLE "Heart of Lothian (Extended Mix)"
    PERFORMER "Marillion"
    ISRC GBAYE9801908
    INDEX 00 18:23:15
    INDEX 01 18:24:12
  TRACK 06 AUDIO
    TITLE "Pseudo Silk Kimono (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801909
    INDEX 00 24:10:15
    INDEX 01 24:18:17
  TRACK 07 AUDIO
    TITLE "Kayleigh (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801910
    INDEX 01 26:29:70
  TRACK 08 AUDIO
    TITLE "Lavender (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801911
    INDEX 01 30:36:20
  TRACK 09 AUDIO
    TITLE "Bitter Suite (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801912
    INDEX 01 33:14:10
    INDEX 02 34:52:55
  TRACK 10 AUDIO
    TITLE "Lords of the Backstage (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801913
    INDEX 01 36:08:70
  TRACK 11 AUDIO
    TITLE "Blue Angel (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801914
    INDEX 01 37:55:50
  TRACK 12 AUDIO
    TITLE "Misplaced Rendezvous (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801915
    INDEX 01 39:42:17
    INDEX 02 41:01:57
  TRACK 13 AUDIO
    TITLE "Heart of Lothian (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801916
    INDEX 01 41:38:57
    INDEX 02 44:26:35
  TRACK 14 AUDIO
    TITLE "Waterhole (Expresso Bongo) (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801917
    INDEX 00 45:27:70
    INDEX 01 45:28:15
  TRACK 15 AUDIO
    TITLE "Passing Strangers (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801918
    INDEX 01 47:28:62
    INDEX 02 49:40:52
    INDEX 03 51:28:62
    INDEX 04 53:45:72
  TRACK 16 AUDIO
    TITLE "Childhoods End? (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801919
    INDEX 01 56:45:67
  TRACK 17 AUDIO
    TITLE "White Feather (Album Demo)"
    PERFORMER "Marillion"
    ISRC GBAYE9801920
    INDEX 01 59:09:50`

func TestMarillionSheet(t *testing.T) {
	list, issues, err := Parse(marillionSheet)
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, "Progressive Rock", list.Genre)
	assert.Equal(t, "1985", list.Date)
	assert.Equal(t, "DC0E6811", list.DiscID)
	assert.Equal(t, "ExactAudioCopy v0.95b3", list.Comment)
	assert.Equal(t, 2, list.DiscNumber)
	assert.Equal(t, 2, list.TotalDiscs)
	assert.Equal(t, "0724349703629", list.Catalog)
	assert.Equal(t, "Marillion", list.Performer)
	assert.Equal(t, "Misplaced Childhood (CD2: Demo)", list.Title)

	require.Len(t, list.Files, 1)
	f := list.Files[0]
	assert.Equal(t, "Marillion - Misplaced Childhood (CD2).flac", f.Name)
	assert.Equal(t, cue.FormatWave, f.Format)
	require.Len(t, f.Tracks, 17)

	first := f.Tracks[0]
	assert.Equal(t, uint32(1), first.Number)
	assert.Equal(t, cue.TypeAudio, first.Type)
	assert.Equal(t, "Lady Nina", first.Title)
	assert.Equal(t, "Marillion", first.Performer)
	assert.Equal(t, "GBAYE9801904", first.ISRC)
	require.NotNil(t, first.Duration)
	assert.Equal(t, cue.NewTime(5, 47, 50), *first.Duration)

	// track 2's duration runs from its own last index (01 05:50:10)
	// to track 3's first index (00 09:55:60)
	second := f.Tracks[1]
	require.NotNil(t, second.Duration)
	assert.Equal(t, cue.NewTime(4, 5, 50), *second.Duration)

	// every track except the last gets a duration on this disc
	for i, track := range f.Tracks[:16] {
		assert.NotNil(t, track.Duration, "track %d", i+1)
	}
	assert.Nil(t, f.Tracks[16].Duration, "the last track's end is unknowable from the sheet")
}

func TestPregapSynthesis(t *testing.T) {
	list, issues, err := Parse(`FILE "disc.img" BINARY
                       TRACK 01 MODE1/2352
                         INDEX 01 00:00:00
                       TRACK 02 AUDIO
                         PREGAP 00:02:00
                         INDEX 01 58:41:36
                       TRACK 03 AUDIO
                         INDEX 00 61:06:08
                         INDEX 01 61:08:08`)
	require.NoError(t, err)
	assert.Empty(t, issues)

	require.Len(t, list.Files, 1)
	tracks := list.Files[0].Tracks
	require.Len(t, tracks, 3)

	assert.Equal(t, []Index{{1, cue.NewTime(0, 0, 0)}}, tracks[0].Indexes)
	// the pregap becomes index 0, two seconds before the real start
	assert.Equal(t, []Index{
		{0, cue.NewTime(58, 39, 36)},
		{1, cue.NewTime(58, 41, 36)},
	}, tracks[1].Indexes)
	assert.Equal(t, []Index{
		{0, cue.NewTime(61, 6, 8)},
		{1, cue.NewTime(61, 8, 8)},
	}, tracks[2].Indexes)
}

func TestRemKeysAnyCase(t *testing.T) {
	list, issues, err := Parse(`REM GeNrE "Progressive Rock"
REM date 1985
REM Discid AB12`)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "Progressive Rock", list.Genre)
	assert.Equal(t, "1985", list.Date)
	assert.Equal(t, "AB12", list.DiscID)
}

func TestRemUnknownKeyIgnored(t *testing.T) {
	list, issues, err := Parse(`REM REPLAYGAIN_ALBUM_GAIN -7.31 dB`)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, &Tracklist{}, list)
}

func TestRemNumericResilience(t *testing.T) {
	list, _, err := Parse(`REM DISCNUMBER abc`)
	require.NoError(t, err)
	assert.Zero(t, list.DiscNumber)

	list, _, err = Parse(`REM DISCNUMBER 2`)
	require.NoError(t, err)
	assert.Equal(t, 2, list.DiscNumber)

	// mirrors the reference's u8 parse: out of range is dropped too
	list, _, err = Parse(`REM TOTALDISCS 300`)
	require.NoError(t, err)
	assert.Zero(t, list.TotalDiscs)
}

func TestIndexlessTrackBreaksChain(t *testing.T) {
	list, issues, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
  INDEX 01 00:00:00
TRACK 02 AUDIO
  TITLE "no markers"
TRACK 03 AUDIO
  INDEX 01 10:00:00
TRACK 04 AUDIO
  INDEX 01 12:00:00`)
	require.NoError(t, err)
	assert.Empty(t, issues)

	tracks := list.Files[0].Tracks
	require.Len(t, tracks, 4)
	assert.Nil(t, tracks[0].Duration, "stop time would have come from the index-less track")
	assert.Nil(t, tracks[1].Duration)
	require.NotNil(t, tracks[2].Duration)
	assert.Equal(t, cue.NewTime(2, 0, 0), *tracks[2].Duration)
	assert.Nil(t, tracks[3].Duration)
}

func TestAnchorDoesNotCrossFiles(t *testing.T) {
	list, issues, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
  INDEX 01 00:00:00
FILE "b.flac" WAVE
TRACK 02 AUDIO
  INDEX 01 03:00:00`)
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, list.Files, 2)
	assert.Nil(t, list.Files[0].Tracks[0].Duration)
	assert.Nil(t, list.Files[1].Tracks[0].Duration)
}

func TestEmptyFile(t *testing.T) {
	list, issues, err := Parse(`FILE "empty.flac" WAVE`)
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, list.Files, 1)
	assert.Empty(t, list.Files[0].Tracks)
}

func TestRepeatedDirectivesLastWins(t *testing.T) {
	list, issues, err := Parse(`TITLE "first"
TITLE "second"
FILE "a.flac" WAVE
TRACK 01 AUDIO
  PERFORMER "one"
  PERFORMER "two"
  INDEX 01 00:00:00`)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "second", list.Title)
	assert.Equal(t, "two", list.Files[0].Tracks[0].Performer)
}

func TestPregapWithoutIndex(t *testing.T) {
	// pregap as the last directive of its track
	list, issues, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
  PREGAP 00:02:00`)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.ErrorIs(t, issues[0], ErrMissingIndexAfterPregap)
	assert.Empty(t, list.Files, "the failing file is dropped, not kept half-built")

	// pregap followed by something other than an index
	list, issues, err = Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
  INDEX 01 00:00:00
FILE "b.flac" WAVE
TRACK 02 AUDIO
  PREGAP 00:02:00
  TITLE "not an index"`)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.ErrorIs(t, issues[0], ErrMissingIndexAfterPregap)
	// the file assembled before the failure survives
	require.Len(t, list.Files, 1)
	assert.Equal(t, "a.flac", list.Files[0].Name)
}

func TestPregapUnderflow(t *testing.T) {
	list, issues, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
  PREGAP 00:02:00
  INDEX 01 00:01:00`)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.ErrorIs(t, issues[0], cue.ErrNegativeTime)
	assert.Empty(t, list.Files)
}

func TestDurationUnderflowSkipsAssignment(t *testing.T) {
	list, issues, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
  INDEX 01 10:00:00
TRACK 02 AUDIO
  INDEX 01 05:00:00`)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.ErrorIs(t, issues[0], cue.ErrNegativeTime)

	// both tracks are kept, only the bogus duration is withheld
	tracks := list.Files[0].Tracks
	require.Len(t, tracks, 2)
	assert.Nil(t, tracks[0].Duration)
	assert.Nil(t, tracks[1].Duration)
}

func TestTrailingDirectiveReported(t *testing.T) {
	list, issues, err := Parse(`FILE "a.flac" WAVE
TRACK 01 AUDIO
  INDEX 01 00:00:00
CATALOG 0724349703629`)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.ErrorIs(t, issues[0], ErrExpectedFile)
	require.Len(t, list.Files, 1)
}

func TestConsumeTrackMisuse(t *testing.T) {
	c := cursor{cmds: []cue.Command{cue.Title("not a track")}}
	_, err := consumeTrack(&c)
	assert.ErrorIs(t, err, ErrExpectedTrack)
}

func TestAssembleDeterministic(t *testing.T) {
	cmds, err := cue.Parse(marillionSheet)
	require.NoError(t, err)

	first, issues1 := Assemble(cmds)
	second, issues2 := Assemble(cmds)
	assert.Equal(t, first, second)
	assert.Equal(t, issues1, issues2)
}
