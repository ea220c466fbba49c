package md

import (
	"fmt"
	"strings"

	"nocomment/internal/event"
)

// RenderHTML serializes an event stream to HTML. Raw HTML events pass
// through unescaped; text payloads are entity-escaped.
func RenderHTML(events []event.Event) string {
	w := &htmlWriter{events: events}
	return w.blocks(event.Invalid)
}

type htmlWriter struct {
	events []event.Event
	i      int
}

func (w *htmlWriter) blocks(until event.Kind) string {
	var b strings.Builder
	for w.i < len(w.events) {
		ev := w.events[w.i]
		if ev.Kind == until {
			w.i++
			break
		}
		switch ev.Kind {
		case event.StartParagraph:
			w.i++
			b.WriteString("<p>" + w.inlines(event.EndParagraph) + "</p>\n")
		case event.StartHeading:
			w.i++
			b.WriteString(fmt.Sprintf("<h%d>%s</h%d>\n", ev.Level, w.inlines(event.EndHeading), ev.Level))
		case event.StartBlockquote:
			w.i++
			b.WriteString("<blockquote>\n" + w.blocks(event.EndBlockquote) + "</blockquote>\n")
		case event.StartCodeBlock:
			w.i++
			b.WriteString(w.codeBlock(ev.Text))
		case event.Rule:
			w.i++
			b.WriteString("<hr />\n")
		case event.HTML:
			w.i++
			b.WriteString(ev.Text)
		case event.Text, event.Code, event.SoftBreak, event.HardBreak,
			event.StartEmphasis, event.StartStrong, event.StartLink:
			b.WriteString(w.inlines(until))
		default:
			w.i++
		}
	}
	return b.String()
}

func (w *htmlWriter) codeBlock(info string) string {
	var body string
	if w.i < len(w.events) && w.events[w.i].Kind == event.Text {
		body = w.events[w.i].Text
		w.i++
	}
	if w.i < len(w.events) && w.events[w.i].Kind == event.EndCodeBlock {
		w.i++
	}
	open := "<pre><code>"
	if info != "" {
		lang := info
		if sp := strings.IndexByte(lang, ' '); sp >= 0 {
			lang = lang[:sp]
		}
		open = fmt.Sprintf("<pre><code class=\"language-%s\">", lang)
	}
	return open + escape(body) + "</code></pre>\n"
}

func (w *htmlWriter) inlines(until event.Kind) string {
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
			b.WriteString(escape(ev.Text))
		case event.Code:
			b.WriteString("<code>" + escape(ev.Text) + "</code>")
		case event.HTML:
			b.WriteString(ev.Text)
		case event.SoftBreak:
			b.WriteByte('\n')
		case event.HardBreak:
			b.WriteString("<br />\n")
		case event.StartEmphasis:
			b.WriteString("<em>" + w.inlines(event.EndEmphasis) + "</em>")
		case event.StartStrong:
			b.WriteString("<strong>" + w.inlines(event.EndStrong) + "</strong>")
		case event.StartLink:
			b.WriteString("<a href=\"" + escapeAttr(ev.Text) + "\">" + w.inlines(event.EndLink) + "</a>")
		default:
			if ev.IsEnd() {
				continue
			}
			w.i--
			return b.String()
		}
	}
	return b.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string { return htmlEscaper.Replace(s) }

var attrEscaper = strings.NewReplacer("&", "&amp;", "\"", "&quot;")

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
