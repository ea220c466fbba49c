package md

import (
	"fmt"

	"fortio.org/safecast"
)

// cursor is a byte-position reader over one line of inline content.
type cursor struct {
	src []byte
	off uint32
	// limit is the exclusive upper bound for off.
	limit uint32
}

func newCursor(src []byte) cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("inline content overflow: %w", err))
	}
	return cursor{src: src, limit: limit}
}

// eof reports whether the cursor has consumed all input.
func (c *cursor) eof() bool {
	return c.off >= c.limit
}

// peek reads the current byte, or 0 at eof.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// bump advances one byte and returns it, or 0 at eof.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// rest returns the unconsumed tail of the input.
func (c *cursor) rest() string {
	if c.eof() {
		return ""
	}
	return string(c.src[c.off:])
}

// advance moves the cursor n bytes forward, clamped to the limit.
func (c *cursor) advance(n int) {
	d, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("advance overflow: %w", err))
	}
	c.off += d
	if c.off > c.limit {
		c.off = c.limit
	}
}

// run counts the length of the run of b starting at the cursor.
func (c *cursor) run(b byte) int {
	n := 0
	for i := c.off; i < c.limit && c.src[i] == b; i++ {
		n++
	}
	return n
}
