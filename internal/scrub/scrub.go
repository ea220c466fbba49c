package scrub

import (
	"strings"
	"unicode"

	"nocomment/internal/event"
	"nocomment/internal/trace"
)

const (
	commentStart = "<!--"
	commentEnd   = "-->"
)

// closed reports whether s, with trailing whitespace stripped, ends with
// the comment terminator. This is the only closure test; interior hyphens
// and leading whitespace are irrelevant.
func closed(s string) bool {
	return strings.HasSuffix(strings.TrimRightFunc(s, unicode.IsSpace), commentEnd)
}

// Scrub returns events with every closed HTML comment span removed.
//
// Two trigger shapes start a candidate span: a lone "<" text event whose
// successor is a text event starting with "!--" (the tokenizer split a
// malformed-looking comment into pieces), and an HTML event starting with
// "<!--". A candidate is scanned forward with provisional peeks until some
// payload's trimmed text ends with "-->"; on closure the whole span is
// dropped, otherwise nothing is consumed beyond the trigger and every
// scanned event is re-examined normally. Scrub is total: malformed comment
// markup degrades to "not a comment", never to an error.
func Scrub(events []event.Event, opts ...Option) []event.Event {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	filtered := make([]event.Event, 0, len(events))
	cur := newCursor(events)
	for {
		ev, ok := cur.next()
		if !ok {
			break
		}
		switch {
		case ev.IsText() && ev.Text == "<":
			if !scrubSplit(cur, ev, o.Tracer) {
				filtered = append(filtered, ev)
			}
		case ev.IsHTML() && strings.HasPrefix(ev.Text, commentStart):
			if !scrubHTML(cur, ev, o.Tracer) {
				filtered = append(filtered, ev)
			}
		default:
			// Not a comment event, pass it through as is.
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// scrubSplit handles the split-opener shape: ev is a lone "<" text event.
// It reports whether a closed span was found and consumed; on false the
// caller emits ev and the peeked events remain in the stream.
func scrubSplit(cur *cursor, ev event.Event, tr trace.Tracer) bool {
	next, ok := cur.peek()
	if !ok || !next.IsText() || !strings.HasPrefix(next.Text, "!--") {
		cur.resetPeek()
		return false
	}

	removal := ev.Text + next.Text
	// Span closed within the trigger pair itself.
	if closed(next.Text) {
		cur.consume(1)
		trace.Debugf(tr, trace.ScopeComment, "comment: %s", removal)
		return true
	}

	// Extend the lookahead one event at a time. Structural events between
	// text runs stay inside the span: a comment may cross a paragraph
	// boundary.
	found := false
	count := 0
	for {
		la, ok := cur.peek()
		if !ok {
			break
		}
		count++
		if !la.IsText() {
			continue
		}
		removal += la.Text
		if closed(la.Text) {
			found = true
			break
		}
	}
	if !found {
		cur.resetPeek()
		return false
	}
	// The "!--" event plus everything scanned after it.
	cur.consume(count + 1)
	trace.Debugf(tr, trace.ScopeComment, "comment: %s", removal)
	return true
}

// scrubHTML handles the whole-token shape: ev is an HTML event starting
// with "<!--". Only consecutive HTML events may extend the span; the first
// non-HTML event ends the scan as "not found".
func scrubHTML(cur *cursor, ev event.Event, tr trace.Tracer) bool {
	if closed(ev.Text) {
		// The event alone is the entire comment.
		trace.Debugf(tr, trace.ScopeComment, "comment: %s", ev.Text)
		return true
	}

	removal := []string{ev.Text}
	count := 0
	for {
		la, ok := cur.peek()
		if !ok || !la.IsHTML() {
			cur.resetPeek()
			return false
		}
		removal = append(removal, la.Text)
		count++
		if closed(la.Text) {
			cur.consume(count)
			trace.Debugf(tr, trace.ScopeComment, "comment: %s", strings.Join(removal, ""))
			return true
		}
	}
}
