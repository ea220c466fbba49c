package md

import (
	"reflect"
	"testing"

	"nocomment/internal/event"
)

func assertEvents(t *testing.T, got, want []event.Event) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events mismatch:\n got:  %v\n want: %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("expected no events, got %v", got)
	}
}

func TestTokenizeParagraph(t *testing.T) {
	assertEvents(t, Tokenize("hello world\n"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("hello world"),
		{Kind: event.EndParagraph},
	})
}

func TestTokenizeSoftBreak(t *testing.T) {
	assertEvents(t, Tokenize("one\ntwo"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("one"),
		{Kind: event.SoftBreak},
		event.TextOf("two"),
		{Kind: event.EndParagraph},
	})
}

func TestTokenizeHeading(t *testing.T) {
	assertEvents(t, Tokenize("## Title ##"), []event.Event{
		{Kind: event.StartHeading, Level: 2},
		event.TextOf("Title"),
		{Kind: event.EndHeading, Level: 2},
	})
}

func TestTokenizeEmphasisAndStrong(t *testing.T) {
	assertEvents(t, Tokenize("a *b* **c**"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("a "),
		{Kind: event.StartEmphasis},
		event.TextOf("b"),
		{Kind: event.EndEmphasis},
		event.TextOf(" "),
		{Kind: event.StartStrong},
		event.TextOf("c"),
		{Kind: event.EndStrong},
		{Kind: event.EndParagraph},
	})
}

func TestTokenizeCodeSpan(t *testing.T) {
	assertEvents(t, Tokenize("run `go build` now"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("run "),
		{Kind: event.Code, Text: "go build"},
		event.TextOf(" now"),
		{Kind: event.EndParagraph},
	})
}

func TestTokenizeInlineLink(t *testing.T) {
	assertEvents(t, Tokenize("see [docs](https://example.com) here"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("see "),
		{Kind: event.StartLink, Text: "https://example.com"},
		event.TextOf("docs"),
		{Kind: event.EndLink, Text: "https://example.com"},
		event.TextOf(" here"),
		{Kind: event.EndParagraph},
	})
}

func TestTokenizeFencedCodeBlock(t *testing.T) {
	assertEvents(t, Tokenize("```go\nfmt.Println()\n```\n"), []event.Event{
		{Kind: event.StartCodeBlock, Text: "go"},
		event.TextOf("fmt.Println()\n"),
		{Kind: event.EndCodeBlock},
	})
}

func TestTokenizeBlockquote(t *testing.T) {
	assertEvents(t, Tokenize("> quoted text"), []event.Event{
		{Kind: event.StartBlockquote},
		{Kind: event.StartParagraph},
		event.TextOf("quoted text"),
		{Kind: event.EndParagraph},
		{Kind: event.EndBlockquote},
	})
}

func TestTokenizeThematicBreak(t *testing.T) {
	assertEvents(t, Tokenize("a\n\n---\n\nb"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("a"),
		{Kind: event.EndParagraph},
		{Kind: event.Rule},
		{Kind: event.StartParagraph},
		event.TextOf("b"),
		{Kind: event.EndParagraph},
	})
}

// TestTokenizeInlineComment checks a well-formed inline comment becomes a
// single HTML event.
func TestTokenizeInlineComment(t *testing.T) {
	assertEvents(t, Tokenize("text <!-- note -->"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("text "),
		event.HTMLOf("<!-- note -->"),
		{Kind: event.EndParagraph},
	})
}

// TestTokenizeMalformedCommentSplits checks an inline comment with an
// interior "--" is split: the "<" becomes its own text event.
func TestTokenizeMalformedCommentSplits(t *testing.T) {
	assertEvents(t, Tokenize("text <!-- --bad -->"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("text "),
		event.TextOf("<"),
		event.TextOf("!-- --bad -->"),
		{Kind: event.EndParagraph},
	})
}

// TestTokenizeUnterminatedCommentSplits checks an inline comment that
// never closes on its line also takes the split path.
func TestTokenizeUnterminatedCommentSplits(t *testing.T) {
	assertEvents(t, Tokenize("text <!-- open"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("text "),
		event.TextOf("<"),
		event.TextOf("!-- open"),
		{Kind: event.EndParagraph},
	})
}

// TestTokenizeCommentBlockPerLine checks a block-level comment produces
// one HTML event per line, terminator line included.
func TestTokenizeCommentBlockPerLine(t *testing.T) {
	assertEvents(t, Tokenize("<!-- first\nsecond\n-->\n"), []event.Event{
		event.HTMLOf("<!-- first\n"),
		event.HTMLOf("second\n"),
		event.HTMLOf("-->\n"),
	})
}

// TestTokenizeCommentBlockSpansBlankLines checks blank lines do not end a
// comment block.
func TestTokenizeCommentBlockSpansBlankLines(t *testing.T) {
	assertEvents(t, Tokenize("<!-- open\n\nclose -->\n"), []event.Event{
		event.HTMLOf("<!-- open\n"),
		event.HTMLOf("\n"),
		event.HTMLOf("close -->\n"),
	})
}

// TestTokenizeHTMLBlockEndsAtBlankLine checks ordinary HTML blocks stop at
// the first blank line.
func TestTokenizeHTMLBlockEndsAtBlankLine(t *testing.T) {
	assertEvents(t, Tokenize("<div>\ncontent\n</div>\n\nafter"), []event.Event{
		event.HTMLOf("<div>\n"),
		event.HTMLOf("content\n"),
		event.HTMLOf("</div>\n"),
		{Kind: event.StartParagraph},
		event.TextOf("after"),
		{Kind: event.EndParagraph},
	})
}

// TestTokenizeInlineHTMLTag checks plain tags inside a paragraph become
// single HTML events.
func TestTokenizeInlineHTMLTag(t *testing.T) {
	assertEvents(t, Tokenize("a <b>bold</b> word"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("a "),
		event.HTMLOf("<b>"),
		event.TextOf("bold"),
		event.HTMLOf("</b>"),
		event.TextOf(" word"),
		{Kind: event.EndParagraph},
	})
}

// TestTokenizeLoneAngle checks "<" that is not markup stands alone.
func TestTokenizeLoneAngle(t *testing.T) {
	assertEvents(t, Tokenize("a < b"), []event.Event{
		{Kind: event.StartParagraph},
		event.TextOf("a "),
		event.TextOf("<"),
		event.TextOf(" b"),
		{Kind: event.EndParagraph},
	})
}
