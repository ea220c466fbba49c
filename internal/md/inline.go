package md

import (
	"strings"

	"nocomment/internal/event"
)

// inline tokenizes one line of inline content into events.
func (t *tokenizer) inline(s string) {
	c := newCursor([]byte(s))
	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			t.emit(event.TextOf(string(lit)))
			lit = lit[:0]
		}
	}

	for !c.eof() {
		switch c.peek() {
		case '\\':
			c.bump()
			if !c.eof() {
				lit = append(lit, c.bump())
			}
		case '`':
			width := c.run('`')
			body, n, ok := scanCodeSpan(c.rest(), width)
			if !ok {
				for i := 0; i < width; i++ {
					lit = append(lit, '`')
				}
				c.advance(width)
				continue
			}
			flush()
			t.emit(event.Event{Kind: event.Code, Text: body})
			c.advance(n)
		case '*':
			width := c.run('*')
			if width > 2 {
				width = 2
			}
			delim := strings.Repeat("*", width)
			rest := c.rest()
			end := strings.Index(rest[width:], delim)
			if end < 0 {
				lit = append(lit, rest[:width]...)
				c.advance(width)
				continue
			}
			flush()
			open, close := event.StartEmphasis, event.EndEmphasis
			if width == 2 {
				open, close = event.StartStrong, event.EndStrong
			}
			t.emit(event.Event{Kind: open})
			t.inline(rest[width : width+end])
			t.emit(event.Event{Kind: close})
			c.advance(width + end + width)
		case '[':
			rest := c.rest()
			label, dest, n, ok := scanLink(rest)
			if !ok {
				lit = append(lit, c.bump())
				continue
			}
			flush()
			t.emit(event.Event{Kind: event.StartLink, Text: dest})
			t.inline(label)
			t.emit(event.Event{Kind: event.EndLink, Text: dest})
			c.advance(n)
		case '<':
			rest := c.rest()
			if n, ok := scanInlineComment(rest); ok {
				flush()
				t.emit(event.HTMLOf(rest[:n]))
				c.advance(n)
				continue
			}
			if n, ok := scanInlineTag(rest); ok {
				flush()
				t.emit(event.HTMLOf(rest[:n]))
				c.advance(n)
				continue
			}
			// Not markup: the "<" stands alone as its own text event.
			flush()
			t.emit(event.TextOf("<"))
			c.advance(1)
		default:
			lit = append(lit, c.bump())
		}
	}
	flush()
}

// scanCodeSpan matches a code span opened by a backtick run of the given
// width. It returns the span body and the total length consumed.
func scanCodeSpan(rest string, width int) (body string, n int, ok bool) {
	delim := strings.Repeat("`", width)
	inner := rest[width:]
	end := strings.Index(inner, delim)
	if end < 0 {
		return "", 0, false
	}
	// The closing run must be exactly the opening width.
	if end+width < len(inner) && inner[end+width] == '`' {
		return "", 0, false
	}
	body = inner[:end]
	// A single leading and trailing space is stripped when the body is not
	// all spaces.
	if strings.HasPrefix(body, " ") && strings.HasSuffix(body, " ") && strings.TrimSpace(body) != "" {
		body = body[1 : len(body)-1]
	}
	return body, width + end + width, true
}

// scanLink matches an inline link [label](dest), returning the label, the
// destination, and the total length consumed.
func scanLink(rest string) (label, dest string, n int, ok bool) {
	close := strings.Index(rest, "](")
	if close < 0 {
		return "", "", 0, false
	}
	label = rest[1:close]
	if strings.ContainsAny(label, "[]") {
		return "", "", 0, false
	}
	end := strings.IndexByte(rest[close+2:], ')')
	if end < 0 {
		return "", "", 0, false
	}
	dest = rest[close+2 : close+2+end]
	return label, dest, close + 2 + end + 1, true
}

// scanInlineComment matches a well-formed HTML comment at the start of
// rest: it must close on the same line and its interior may not contain
// "--". Anything else is left for the split-text fallback.
func scanInlineComment(rest string) (n int, ok bool) {
	if !strings.HasPrefix(rest, "<!--") {
		return 0, false
	}
	body := rest[4:]
	end := strings.Index(body, "-->")
	if end < 0 {
		return 0, false
	}
	interior := body[:end]
	if strings.Contains(interior, "--") || strings.HasSuffix(interior, "-") {
		return 0, false
	}
	return 4 + end + 3, true
}

// scanInlineTag matches a plain HTML tag <name ...>, </name>, or <?...?>
// at the start of rest.
func scanInlineTag(rest string) (n int, ok bool) {
	if len(rest) < 3 || rest[0] != '<' {
		return 0, false
	}
	i := 1
	if rest[i] == '/' || rest[i] == '?' {
		i++
	}
	if i >= len(rest) || !isASCIILetter(rest[i]) {
		return 0, false
	}
	for ; i < len(rest); i++ {
		switch rest[i] {
		case '>':
			return i + 1, true
		case '<':
			return 0, false
		}
	}
	return 0, false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
