package md

import (
	"strings"

	"nocomment/internal/event"
)

// Tokenize converts markdown source into an event stream. It never fails:
// anything it does not recognize as block structure becomes paragraph
// content.
func Tokenize(src string) []event.Event {
	lines := strings.Split(src, "\n")
	// A trailing newline yields an empty final element, not an extra blank
	// source line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	t := &tokenizer{lines: lines}
	t.blocks()
	return t.events
}

type tokenizer struct {
	lines  []string
	i      int
	events []event.Event
}

func (t *tokenizer) emit(ev event.Event) {
	t.events = append(t.events, ev)
}

func (t *tokenizer) blocks() {
	for t.i < len(t.lines) {
		line := t.lines[t.i]
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			t.i++
		case isThematicBreak(trimmed):
			t.emit(event.Event{Kind: event.Rule})
			t.i++
		case headingLevel(trimmed) > 0:
			t.heading(trimmed)
		case fenceWidth(trimmed) > 0:
			t.codeBlock()
		case strings.HasPrefix(trimmed, ">"):
			t.blockquote()
		case isHTMLBlockStart(trimmed):
			t.htmlBlock()
		default:
			t.paragraph()
		}
	}
}

// isThematicBreak reports whether a trimmed line is a horizontal rule:
// three or more of the same marker, spaces allowed between.
func isThematicBreak(trimmed string) bool {
	marker := byte(0)
	count := 0
	for i := 0; i < len(trimmed); i++ {
		b := trimmed[i]
		if b == ' ' || b == '\t' {
			continue
		}
		if b != '-' && b != '*' && b != '_' {
			return false
		}
		if marker == 0 {
			marker = b
		}
		if b != marker {
			return false
		}
		count++
	}
	return count >= 3
}

// headingLevel returns the ATX heading level of a trimmed line, or 0.
func headingLevel(trimmed string) int {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level < len(trimmed) && trimmed[level] != ' ' && trimmed[level] != '\t' {
		return 0
	}
	return level
}

// fenceWidth returns the width of a code fence opener on a trimmed line,
// or 0.
func fenceWidth(trimmed string) int {
	if len(trimmed) == 0 {
		return 0
	}
	marker := trimmed[0]
	if marker != '`' && marker != '~' {
		return 0
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == marker {
		n++
	}
	if n < 3 {
		return 0
	}
	// An info string may not contain the backtick marker.
	if marker == '`' && strings.ContainsRune(trimmed[n:], '`') {
		return 0
	}
	return n
}

// isHTMLBlockStart reports whether a trimmed line opens an HTML block.
func isHTMLBlockStart(trimmed string) bool {
	if len(trimmed) < 2 || trimmed[0] != '<' {
		return false
	}
	switch b := trimmed[1]; {
	case b == '!' || b == '/' || b == '?':
		return true
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	default:
		return false
	}
}

func (t *tokenizer) heading(trimmed string) {
	level := headingLevel(trimmed)
	content := strings.TrimSpace(trimmed[level:])
	// Trailing closing hashes are decoration.
	content = strings.TrimRight(content, "#")
	content = strings.TrimRight(content, " \t")
	t.emit(event.Event{Kind: event.StartHeading, Level: level})
	t.inline(content)
	t.emit(event.Event{Kind: event.EndHeading, Level: level})
	t.i++
}

func (t *tokenizer) codeBlock() {
	opener := strings.TrimSpace(t.lines[t.i])
	width := fenceWidth(opener)
	marker := opener[0]
	info := strings.TrimSpace(opener[width:])
	t.i++

	var body strings.Builder
	for t.i < len(t.lines) {
		line := t.lines[t.i]
		trimmed := strings.TrimSpace(line)
		if w := closingFenceWidth(trimmed, marker); w >= width {
			t.i++
			break
		}
		body.WriteString(line)
		body.WriteByte('\n')
		t.i++
	}

	t.emit(event.Event{Kind: event.StartCodeBlock, Text: info})
	if body.Len() > 0 {
		t.emit(event.TextOf(body.String()))
	}
	t.emit(event.Event{Kind: event.EndCodeBlock})
}

// closingFenceWidth returns the width of a closing fence of marker on a
// trimmed line, or 0 when the line is not a bare fence.
func closingFenceWidth(trimmed string, marker byte) int {
	n := 0
	for n < len(trimmed) && trimmed[n] == marker {
		n++
	}
	if n < 3 || n != len(trimmed) {
		return 0
	}
	return n
}

func (t *tokenizer) blockquote() {
	var inner []string
	for t.i < len(t.lines) {
		trimmed := strings.TrimSpace(t.lines[t.i])
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		stripped := trimmed[1:]
		stripped = strings.TrimPrefix(stripped, " ")
		inner = append(inner, stripped)
		t.i++
	}
	t.emit(event.Event{Kind: event.StartBlockquote})
	t.events = append(t.events, Tokenize(strings.Join(inner, "\n"))...)
	t.emit(event.Event{Kind: event.EndBlockquote})
}

func (t *tokenizer) htmlBlock() {
	if strings.HasPrefix(strings.TrimSpace(t.lines[t.i]), "<!--") {
		// Comment block: one event per line up to and including the line
		// that carries the terminator. Blank lines do not end it; an
		// unterminated comment runs to the end of the input.
		for t.i < len(t.lines) {
			line := t.lines[t.i]
			t.emit(event.HTMLOf(line + "\n"))
			t.i++
			if strings.Contains(line, "-->") {
				return
			}
		}
		return
	}
	// Any other HTML block ends at the first blank line.
	for t.i < len(t.lines) {
		line := t.lines[t.i]
		if strings.TrimSpace(line) == "" {
			return
		}
		t.emit(event.HTMLOf(line + "\n"))
		t.i++
	}
}

func (t *tokenizer) paragraph() {
	t.emit(event.Event{Kind: event.StartParagraph})
	first := true
	for t.i < len(t.lines) {
		line := t.lines[t.i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isThematicBreak(trimmed) || headingLevel(trimmed) > 0 ||
			fenceWidth(trimmed) > 0 || strings.HasPrefix(trimmed, ">") {
			break
		}
		if !first {
			t.emit(event.Event{Kind: event.SoftBreak})
		}
		first = false
		content := strings.TrimRight(strings.TrimLeft(line, " \t"), " \t")
		hard := strings.HasSuffix(line, "  ") || strings.HasSuffix(content, "\\")
		content = strings.TrimSuffix(content, "\\")
		t.inline(content)
		t.i++
		if hard && t.i < len(t.lines) && strings.TrimSpace(t.lines[t.i]) != "" {
			t.emit(event.Event{Kind: event.HardBreak})
			first = true
		}
	}
	t.emit(event.Event{Kind: event.EndParagraph})
}
