package event

// Kind represents the category of a markdown event.
type Kind uint8

const (
	// Invalid indicates an erroneous event.
	Invalid Kind = iota

	// Text represents a run of plain inline text.
	Text
	// Code represents an inline code span.
	Code
	// HTML represents raw HTML markup, either an HTML block line or an
	// inline HTML fragment.
	HTML
	// SoftBreak represents a newline inside a paragraph.
	SoftBreak
	// HardBreak represents a forced line break.
	HardBreak
	// Rule represents a thematic break.
	Rule

	// StartParagraph opens a paragraph.
	StartParagraph
	// EndParagraph closes a paragraph.
	EndParagraph
	// StartHeading opens an ATX heading; Event.Level carries the level.
	StartHeading
	// EndHeading closes a heading.
	EndHeading
	// StartEmphasis opens an emphasis span.
	StartEmphasis
	// EndEmphasis closes an emphasis span.
	EndEmphasis
	// StartStrong opens a strong span.
	StartStrong
	// EndStrong closes a strong span.
	EndStrong
	// StartBlockquote opens a blockquote.
	StartBlockquote
	// EndBlockquote closes a blockquote.
	EndBlockquote
	// StartCodeBlock opens a fenced code block; Event.Text carries the
	// info string.
	StartCodeBlock
	// EndCodeBlock closes a fenced code block.
	EndCodeBlock
	// StartLink opens an inline link; Event.Text carries the destination.
	StartLink
	// EndLink closes a link.
	EndLink
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Code:
		return "Code"
	case HTML:
		return "HTML"
	case SoftBreak:
		return "SoftBreak"
	case HardBreak:
		return "HardBreak"
	case Rule:
		return "Rule"
	case StartParagraph:
		return "StartParagraph"
	case EndParagraph:
		return "EndParagraph"
	case StartHeading:
		return "StartHeading"
	case EndHeading:
		return "EndHeading"
	case StartEmphasis:
		return "StartEmphasis"
	case EndEmphasis:
		return "EndEmphasis"
	case StartStrong:
		return "StartStrong"
	case EndStrong:
		return "EndStrong"
	case StartBlockquote:
		return "StartBlockquote"
	case EndBlockquote:
		return "EndBlockquote"
	case StartCodeBlock:
		return "StartCodeBlock"
	case EndCodeBlock:
		return "EndCodeBlock"
	case StartLink:
		return "StartLink"
	case EndLink:
		return "EndLink"
	default:
		return "Invalid"
	}
}
