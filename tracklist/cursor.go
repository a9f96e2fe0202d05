package tracklist

import "github.com/rabidaudio/cuetools/cue"

// cursor is a read position over an immutable directive slice.
// Directives are only ever consumed from the front; the backing
// slice is never modified. peekAt provides the one-directive
// lookahead the pregap rule needs.
type cursor struct {
	cmds []cue.Command
	pos  int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.cmds)
}

// peek returns the directive at the cursor, or nil at end of input.
func (c *cursor) peek() cue.Command {
	return c.peekAt(0)
}

// peekAt returns the directive n positions past the cursor, or nil
// if that runs off the end.
func (c *cursor) peekAt(n int) cue.Command {
	if c.pos+n >= len(c.cmds) {
		return nil
	}
	return c.cmds[c.pos+n]
}

// advance consumes one directive.
func (c *cursor) advance() {
	c.pos++
}
