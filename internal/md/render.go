package md

import (
	"strings"

	"nocomment/internal/event"
)

// Render serializes an event stream back to markdown. Blocks are separated
// by one blank line; text payloads are written verbatim, so a
// tokenize/render round trip is content-preserving without being
// byte-identical.
func Render(events []event.Event) string {
	w := &mdWriter{events: events}
	out := w.blocks(event.Invalid)
	if out == "" {
		return ""
	}
	return out + "\n"
}

type mdWriter struct {
	events []event.Event
	i      int
}

// blocks renders until an event of kind until (or the end of the stream)
// and returns the blocks joined by blank lines.
func (w *mdWriter) blocks(until event.Kind) string {
	var blocks []string
	for w.i < len(w.events) {
		ev := w.events[w.i]
		if ev.Kind == until {
			w.i++
			break
		}
		switch ev.Kind {
		case event.StartParagraph:
			w.i++
			blocks = append(blocks, w.inlines(event.EndParagraph))
		case event.StartHeading:
			w.i++
			blocks = append(blocks, strings.Repeat("#", ev.Level)+" "+w.inlines(event.EndHeading))
		case event.StartBlockquote:
			w.i++
			blocks = append(blocks, prefixLines("> ", w.blocks(event.EndBlockquote)))
		case event.StartCodeBlock:
			w.i++
			blocks = append(blocks, w.codeBlock(ev.Text))
		case event.Rule:
			w.i++
			blocks = append(blocks, "---")
		case event.HTML:
			blocks = append(blocks, w.htmlBlock())
		case event.Text, event.Code, event.SoftBreak, event.HardBreak,
			event.StartEmphasis, event.StartStrong, event.StartLink:
			// Stray inline outside a block; render it in place.
			blocks = append(blocks, w.inlines(until))
		default:
			// Orphan closer left over from a removed span.
			w.i++
		}
	}
	return strings.Join(blocks, "\n\n")
}

// htmlBlock joins a run of consecutive HTML events into one raw block.
func (w *mdWriter) htmlBlock() string {
	var b strings.Builder
	for w.i < len(w.events) && w.events[w.i].Kind == event.HTML {
		b.WriteString(w.events[w.i].Text)
		w.i++
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (w *mdWriter) codeBlock(info string) string {
	var body string
	if w.i < len(w.events) && w.events[w.i].Kind == event.Text {
		body = w.events[w.i].Text
		w.i++
	}
	if w.i < len(w.events) && w.events[w.i].Kind == event.EndCodeBlock {
		w.i++
	}
	fence := "```"
	for strings.Contains(body, fence) || strings.Contains(info, "`") {
		fence += "`"
	}
	if body == "" {
		return fence + info + "\n" + fence
	}
	return fence + info + "\n" + body + fence
}

// inlines renders until the given end kind, which is consumed.
func (w *mdWriter) inlines(until event.Kind) string {
	var b strings.Builder
	for w.i < len(w.events) {
		ev := w.events[w.i]
		if ev.Kind == until {
			w.i++
			break
		}
		w.i++
		switch ev.Kind {
		case event.Text:
			b.WriteString(ev.Text)
		case event.Code:
			b.WriteString(codeSpan(ev.Text))
		case event.HTML:
			b.WriteString(strings.TrimSuffix(ev.Text, "\n"))
		case event.SoftBreak:
			b.WriteByte('\n')
		case event.HardBreak:
			b.WriteString("  \n")
		case event.StartEmphasis:
			b.WriteString("*" + w.inlines(event.EndEmphasis) + "*")
		case event.StartStrong:
			b.WriteString("**" + w.inlines(event.EndStrong) + "**")
		case event.StartLink:
			b.WriteString("[" + w.inlines(event.EndLink) + "](" + ev.Text + ")")
		default:
			if ev.IsEnd() {
				// Orphan closer from a removed span; drop it.
				continue
			}
			// Block structure inside an inline run means the stream was
			// cut mid-span; step back and let the block renderer resume.
			w.i--
			return b.String()
		}
	}
	return b.String()
}

// codeSpan wraps body in a backtick run longer than any run it contains.
func codeSpan(body string) string {
	delim := "`"
	for strings.Contains(body, delim) {
		delim += "`"
	}
	if strings.HasPrefix(body, "`") || strings.HasSuffix(body, "`") {
		return delim + " " + body + " " + delim
	}
	return delim + body + delim
}

// prefixLines prepends prefix to every line of s; blank lines get the
// prefix trimmed of trailing space.
func prefixLines(prefix, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = strings.TrimRight(prefix, " ")
		} else {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
