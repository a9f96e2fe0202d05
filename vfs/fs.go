// Package vfs builds a FAT32 disk image exposing the tracks of an
// assembled cue sheet as WAV file slots. Car head units and cheap
// USB adapters expect exactly this layout.
package vfs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/filesystem/fat32"
	"github.com/diskfs/go-diskfs/partition/mbr"

	"github.com/rabidaudio/cuetools/tracklist"
)

const DISK_SIZE = 700 * fat32.MB
const SECTOR_SIZE = 512

// BytesPerFrame is the PCM payload of one timing frame:
// (samples/second)*(bytes/sample)*(channels)/(frames/second) = 2352
const BytesPerFrame = 44100 * 2 * 2 / 75

// Filesystem is a virtual FAT32 filesystem with one WAV slot per
// track of a tracklist.
type Filesystem struct {
	filesystem.FileSystem
	Path    string
	list    *tracklist.Tracklist
	closefn func() error
}

// sanitizeName converts a name to DOS 8.3 form by uppercasing,
// limiting to ASCII letters and digits, and trimming to 8 chars.
func sanitizeName(name string) string {
	// https://en.wikipedia.org/wiki/8.3_filename
	newName := make([]rune, 0, max(len(name), 8))
	for _, r := range []rune(strings.ToUpper(name)) {
		if len(newName) == 8 {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			newName = append(newName, r)
		}
	}
	return string(newName)
}

// Create a new filesystem instance. Data is backed by a temporary file.
// Be sure to Close() the Filesystem after use.
func Create() (*Filesystem, error) {
	tmpdir, err := os.MkdirTemp("", "cuetools")
	if err != nil {
		return nil, err
	}
	dskimg := tmpdir + "/disk.img"
	dsk, err := diskfs.Create(dskimg, DISK_SIZE, diskfs.Raw, diskfs.SectorSizeDefault)
	if err != nil {
		return nil, err
	}

	// create an MBR with one partition
	table := &mbr.Table{
		LogicalSectorSize:  SECTOR_SIZE,
		PhysicalSectorSize: SECTOR_SIZE,
		Partitions: []*mbr.Partition{
			{
				Bootable: false,
				Type:     mbr.Linux,
				Start:    0,
				Size:     uint32(10 * fat32.MB),
			},
		},
	}
	err = dsk.Partition(table)
	if err != nil {
		defer os.Remove(dskimg)
		return nil, err
	}
	fatfs, err := dsk.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: "VIRTUALCD",
	})
	if err != nil {
		defer os.Remove(dskimg)
		return nil, err
	}

	closefn := func() (err error) {
		err = os.Remove(dskimg)
		if err != nil {
			return err
		}
		return os.Remove(tmpdir)
	}

	f := Filesystem{
		Path:       dskimg,
		FileSystem: fatfs,
		closefn:    closefn,
	}

	return &f, nil
}

// LoadTracklist creates one directory per disc title and one WAV
// slot per track, sized from the track's inferred duration. Tracks
// with no inferred duration (typically the last of each file) get a
// zero-length slot.
//
// NOTE: rather than writing out zeroes, a much faster way to size
// the slots is to seek to the length and then write zero bytes. This
// is probably an implementation quirk of the fat32 driver so there's
// a test for it in case the behavior changes.
func (f *Filesystem) LoadTracklist(list *tracklist.Tracklist) (err error) {
	sDirName := sanitizeName(list.Title)
	if sDirName != "" {
		sDirName = "/" + sDirName
		err = f.Mkdir(sDirName)
		if err != nil {
			return err
		}
	}

	for _, trackFile := range list.Files {
		for _, track := range trackFile.Tracks {
			fname := fmt.Sprintf("%v/TRACK%02d.WAV", sDirName, track.Number)
			file, err := f.OpenFile(fname, os.O_CREATE|os.O_RDWR)
			if err != nil {
				return fmt.Errorf("create track %v: %w", fname, err)
			}

			_, err = file.Seek(trackSizeBytes(track), io.SeekStart)
			if err != nil {
				return err
			}
			_, err = file.Write([]byte{})
			if err != nil {
				return err
			}
		}
	}
	f.list = list
	return nil
}

func trackSizeBytes(track tracklist.Track) int64 {
	if track.Duration == nil {
		return 0
	}
	return track.Duration.TotalFrames() * BytesPerFrame
}

// WriteTo copies the backing image out to path.
func (f *Filesystem) WriteTo(path string) (err error) {
	r, err := os.Open(f.Path)
	if err != nil {
		return err
	}
	defer r.Close() // ignore error: file was opened read-only.

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if c := w.Close(); err == nil {
			err = c
		}
	}()

	_, err = io.Copy(w, r)
	return err
}

func (f *Filesystem) Close() error {
	return f.closefn()
}
