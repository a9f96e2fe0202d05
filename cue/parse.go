// Package cue tokenizes cue sheets into an ordered sequence of typed
// directives. It does no structural interpretation: FILE, TRACK and
// INDEX come out in source order exactly as written, and turning them
// into a usable tree is the job of package tracklist.
package cue

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// newLineTokenizer returns a scanner that splits one cue sheet line
// into fields. Fields are separated by whitespace; a double-quoted
// field may contain whitespace and is returned without the quotes.
func newLineTokenizer(line string) *bufio.Scanner {
	split := func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}

		pos := 0
		for pos < len(data) && unicode.IsSpace(rune(data[pos])) {
			pos++
		}
		if pos == len(data) {
			return pos, nil, nil
		}

		if data[pos] == '"' {
			i := pos + 1
			for i < len(data) && data[i] != '"' {
				i++
			}
			if i == len(data) {
				if atEOF {
					return 0, nil, fmt.Errorf("string not closed: [%s]", string(data[pos:]))
				}
				return pos, nil, nil // ask for more data
			}
			return i + 1, data[pos+1 : i], nil
		}

		i := pos + 1
		for i < len(data) && !unicode.IsSpace(rune(data[i])) {
			i++
		}
		if i == len(data) && !atEOF {
			return pos, nil, nil
		}
		return i, data[pos:i], nil
	}

	s := bufio.NewScanner(strings.NewReader(line))
	s.Split(split)
	return s
}

func splitFields(line string) ([]string, error) {
	var fields []string
	tok := newLineTokenizer(line)
	for tok.Scan() {
		fields = append(fields, tok.Text())
	}
	return fields, tok.Err()
}

// Parse tokenizes cue sheet text into its directive sequence.
// Blank lines are skipped. Unknown commands, malformed timestamps
// and malformed numbers are errors; Parse has no recovery.
func Parse(source string) ([]Command, error) {
	var cmds []Command

	lineno := 0
	lines := bufio.NewScanner(strings.NewReader(source))
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}

		fields, err := splitFields(line)
		if err != nil {
			return nil, fmt.Errorf("cue: line %d: %w", lineno, err)
		}

		cmd, err := parseCommand(fields[0], fields[1:])
		if err != nil {
			return nil, fmt.Errorf("cue: line %d: %w", lineno, err)
		}
		cmds = append(cmds, cmd)
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

func parseCommand(name string, args []string) (Command, error) {
	switch strings.ToUpper(name) {
	case "CATALOG":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return Catalog(args[0]), nil

	case "PERFORMER":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return Performer(args[0]), nil

	case "TITLE":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return Title(args[0]), nil

	case "SONGWRITER":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return Songwriter(args[0]), nil

	case "ISRC":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return Isrc(args[0]), nil

	case "CDTEXTFILE":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return CDTextFile(args[0]), nil

	case "REM":
		// REM is free-form: the first word acts as a key and the
		// rest is the value, which may or may not have been quoted.
		r := Rem{}
		if len(args) > 0 {
			r.Key = args[0]
			r.Value = strings.Join(args[1:], " ")
		}
		return r, nil

	case "FILE":
		if err := wantArgs(name, args, 2); err != nil {
			return nil, err
		}
		format, err := parseFileFormat(args[1])
		if err != nil {
			return nil, err
		}
		return File{Name: args[0], Format: format}, nil

	case "TRACK":
		if err := wantArgs(name, args, 2); err != nil {
			return nil, err
		}
		num, err := parseNumber(args[0])
		if err != nil {
			return nil, fmt.Errorf("track number: %w", err)
		}
		typ, err := parseTrackType(args[1])
		if err != nil {
			return nil, err
		}
		return Track{Number: num, Type: typ}, nil

	case "INDEX":
		if err := wantArgs(name, args, 2); err != nil {
			return nil, err
		}
		num, err := parseNumber(args[0])
		if err != nil {
			return nil, fmt.Errorf("index number: %w", err)
		}
		t, err := ParseTime(args[1])
		if err != nil {
			return nil, err
		}
		return Index{Number: num, Time: t}, nil

	case "PREGAP":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		t, err := ParseTime(args[0])
		if err != nil {
			return nil, err
		}
		return Pregap{Length: t}, nil

	case "POSTGAP":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		t, err := ParseTime(args[0])
		if err != nil {
			return nil, err
		}
		return Postgap{Length: t}, nil

	case "FLAGS":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return Flags(args), nil

	default:
		return nil, fmt.Errorf("unknown command %q", name)
	}
}

func wantArgs(name string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%v expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func parseNumber(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("cue: not a number: %q", s)
	}
	return uint32(n), nil
}
