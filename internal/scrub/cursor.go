package scrub

import "nocomment/internal/event"

// cursor is a multi-peek reader over a materialized event slice. It keeps
// two positions: pos is the confirmed read position, and pos+ahead is the
// peek position used while a candidate comment span is being scanned.
// Peeked events stay in the stream until consume moves pos past them, so a
// failed scan costs nothing but a resetPeek.
type cursor struct {
	events []event.Event
	pos    int
	ahead  int
}

func newCursor(events []event.Event) *cursor {
	return &cursor{events: events}
}

// next returns the event at the confirmed position and advances it.
// Advancing discards any outstanding peeks.
func (c *cursor) next() (event.Event, bool) {
	if c.pos >= len(c.events) {
		return event.Event{}, false
	}
	ev := c.events[c.pos]
	c.pos++
	c.ahead = 0
	return ev, true
}

// peek returns the event at the peek position and moves the peek position
// forward. Repeated calls walk further ahead without consuming anything.
func (c *cursor) peek() (event.Event, bool) {
	i := c.pos + c.ahead
	if i >= len(c.events) {
		return event.Event{}, false
	}
	c.ahead++
	return c.events[i], true
}

// resetPeek rewinds the peek position to the confirmed position.
func (c *cursor) resetPeek() {
	c.ahead = 0
}

// consume finalizes n peeked events, advancing the confirmed position past
// them.
func (c *cursor) consume(n int) {
	c.pos += n
	if c.pos > len(c.events) {
		c.pos = len(c.events)
	}
	c.ahead = 0
}
