package tagger

import (
	"strconv"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
)

// writeFlacTags rewrites the vorbis-comment block of a FLAC file.
// Other metadata blocks (stream info, seek table, pictures) are
// preserved; stale padding is dropped and re-added at the end.
func writeFlacTags(path string, tags Tags) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return err
	}

	var kept []*flac.MetaDataBlock
	for _, block := range f.Meta {
		if block.Type != flac.VorbisComment && block.Type != flac.Padding {
			kept = append(kept, block)
		}
	}

	comment := buildVorbisComment(tags)
	block := comment.Marshal()
	kept = append(kept, &block)

	padding := flac.MetaDataBlock{Type: flac.Padding, Data: make([]byte, 64)}
	kept = append(kept, &padding)

	f.Meta = kept
	return f.Save(path)
}

func buildVorbisComment(tags Tags) *flacvorbis.MetaDataBlockVorbisComment {
	comment := flacvorbis.New()
	addComment(comment, "TITLE", tags.Title)
	addComment(comment, "ARTIST", tags.Artist)
	addComment(comment, "ALBUM", tags.Album)
	addComment(comment, "ALBUMARTIST", tags.AlbumArtist)
	addComment(comment, "DATE", tags.Date)
	addComment(comment, "GENRE", tags.Genre)
	addComment(comment, "ISRC", tags.ISRC)
	addComment(comment, "CATALOGNUMBER", tags.Catalog)
	addCommentInt(comment, "TRACKNUMBER", tags.TrackNumber)
	addCommentInt(comment, "TRACKTOTAL", tags.TrackTotal)
	addCommentInt(comment, "DISCNUMBER", tags.DiscNumber)
	addCommentInt(comment, "DISCTOTAL", tags.DiscTotal)
	return comment
}

func addComment(c *flacvorbis.MetaDataBlockVorbisComment, name, value string) {
	if value != "" {
		c.Add(name, value)
	}
}

func addCommentInt(c *flacvorbis.MetaDataBlockVorbisComment, name string, value int) {
	if value != 0 {
		c.Add(name, strconv.Itoa(value))
	}
}
