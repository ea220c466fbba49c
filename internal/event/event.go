package event

// Event represents a single unit of a tokenized markdown document.
type Event struct {
	Kind Kind
	// Text is the payload for Text/Code/HTML events, the info string for
	// StartCodeBlock, and the destination for StartLink.
	Text string
	// Level is the heading level for StartHeading/EndHeading.
	Level int
}

// IsText reports whether the event is a plain inline text run.
func (e Event) IsText() bool { return e.Kind == Text }

// IsHTML reports whether the event is raw HTML markup.
func (e Event) IsHTML() bool { return e.Kind == HTML }

// IsStart reports whether the event opens a structural span.
func (e Event) IsStart() bool {
	switch e.Kind {
	case StartParagraph, StartHeading, StartEmphasis, StartStrong,
		StartBlockquote, StartCodeBlock, StartLink:
		return true
	default:
		return false
	}
}

// IsEnd reports whether the event closes a structural span.
func (e Event) IsEnd() bool {
	switch e.Kind {
	case EndParagraph, EndHeading, EndEmphasis, EndStrong,
		EndBlockquote, EndCodeBlock, EndLink:
		return true
	default:
		return false
	}
}

// TextOf builds a plain text event.
func TextOf(s string) Event { return Event{Kind: Text, Text: s} }

// HTMLOf builds a raw HTML event.
func HTMLOf(s string) Event { return Event{Kind: HTML, Text: s} }
