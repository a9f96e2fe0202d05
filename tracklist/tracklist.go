// Package tracklist assembles a flat cue sheet directive sequence
// into a hierarchical description of an audio disc: disc metadata,
// files, tracks, index markers and inferred track durations.
//
// Assembly is a pure function over the directive slice. It is
// best-effort by design: a malformed region of the sheet stops
// consumption at that point and everything assembled up to it is
// returned, together with diagnostics saying what was skipped.
package tracklist

import (
	"strconv"
	"strings"

	"github.com/rabidaudio/cuetools/cue"
)

// Tracklist is the assembled form of a cue sheet. String fields are
// empty when the sheet did not state them; DiscNumber and TotalDiscs
// are zero when unset (they are 1-based in real sheets).
type Tracklist struct {
	// Catalog is the 13 decimal digit UPC/EAN code, not validated here.
	Catalog   string
	Performer string
	Title     string

	// Fields below come from the conventional REM keys rippers emit.
	Genre      string
	Date       string
	DiscID     string
	Comment    string
	DiscNumber int
	TotalDiscs int

	Files []File
}

type assembler struct {
	c      cursor
	issues []Issue
}

func (a *assembler) report(err error) {
	a.issues = append(a.issues, Issue{Pos: a.c.pos, Err: err})
}

// Assemble builds a Tracklist from an ordered directive sequence.
// It always returns a tracklist; when assembly cannot consume the
// whole sequence, the files collected so far are kept and the causes
// are returned as issues.
func Assemble(cmds []cue.Command) (*Tracklist, []Issue) {
	a := assembler{c: cursor{cmds: cmds}}
	list := a.consumeTracklist()
	return list, a.issues
}

// Parse tokenizes cue sheet text and assembles it. The returned
// error comes from the tokenizer only; assembly itself reports
// through issues.
func Parse(source string) (*Tracklist, []Issue, error) {
	cmds, err := cue.Parse(source)
	if err != nil {
		return nil, nil, err
	}
	list, issues := Assemble(cmds)
	return list, issues, nil
}

// consumeTracklist reads the disc-level header directives, then
// files until the sequence is exhausted or no longer matches.
func (a *assembler) consumeTracklist() *Tracklist {
	list := &Tracklist{}

	// Header: CATALOG, PERFORMER, TITLE and REM in any order, any
	// number of times, last occurrence winning. Stops at the first
	// directive outside that set (normally FILE).
header:
	for !a.c.done() {
		switch cmd := a.c.peek().(type) {
		case cue.Catalog:
			list.Catalog = string(cmd)
		case cue.Performer:
			list.Performer = string(cmd)
		case cue.Title:
			list.Title = string(cmd)
		case cue.Rem:
			list.applyRem(cmd)
		default:
			break header
		}
		a.c.advance()
	}

	for !a.c.done() {
		file, err := a.consumeFile()
		if err != nil {
			a.report(err)
			break
		}
		list.Files = append(list.Files, *file)
	}
	return list
}

// applyRem dispatches on the conventional remark keys. Unrecognized
// keys are dropped; so are disc numbers that fail to parse.
func (t *Tracklist) applyRem(r cue.Rem) {
	switch strings.ToUpper(r.Key) {
	case "GENRE":
		t.Genre = r.Value
	case "DATE":
		t.Date = r.Value
	case "DISCID":
		t.DiscID = r.Value
	case "COMMENT":
		t.Comment = r.Value
	case "DISCNUMBER":
		if n, err := strconv.ParseUint(r.Value, 10, 8); err == nil {
			t.DiscNumber = int(n)
		}
	case "TOTALDISCS":
		if n, err := strconv.ParseUint(r.Value, 10, 8); err == nil {
			t.TotalDiscs = int(n)
		}
	}
}
