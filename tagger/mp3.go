package tagger

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// writeMP3Tags replaces the ID3v2 text frames of an MP3 file.
func writeMP3Tags(path string, tags Tags) error {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer t.Close()

	t.SetVersion(4)
	setFrame(t, "TIT2", tags.Title)
	setFrame(t, "TPE1", tags.Artist)
	setFrame(t, "TALB", tags.Album)
	setFrame(t, "TPE2", tags.AlbumArtist)
	setFrame(t, "TDRC", tags.Date)
	setFrame(t, "TCON", tags.Genre)
	setFrame(t, "TSRC", tags.ISRC)
	setFrame(t, "TRCK", posAndTotal(tags.TrackNumber, tags.TrackTotal))
	setFrame(t, "TPOS", posAndTotal(tags.DiscNumber, tags.DiscTotal))

	return t.Save()
}

func setFrame(t *id3v2.Tag, id, value string) {
	if value != "" {
		t.AddTextFrame(id, t.DefaultEncoding(), value)
	}
}

// posAndTotal renders the "n/total" form of TRCK and TPOS frames,
// leaving the total off when it is unknown.
func posAndTotal(pos, total int) string {
	if pos == 0 {
		return ""
	}
	if total == 0 {
		return fmt.Sprintf("%d", pos)
	}
	return fmt.Sprintf("%d/%d", pos, total)
}
