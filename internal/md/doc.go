// Package md turns markdown text into an event stream and back.
//
// The tokenizer covers the subset of CommonMark the preprocessor meets in
// practice: paragraphs, ATX headings, fenced code blocks, thematic breaks,
// blockquotes, HTML blocks, and the usual inlines (code spans, emphasis,
// strong, inline links, inline HTML). Setext headings, lists, and reference
// links are not recognized; their text passes through as paragraph content,
// which round-trips safely because the renderer never rewrites text
// payloads.
//
// Two tokenization details matter downstream:
//   - an HTML block opened by "<!--" produces one HTML event per line and
//     runs until a line whose text contains the closing "-->" (or to the end
//     of input when unterminated);
//   - a "<" that does not begin well-formed inline HTML is emitted as its
//     own text event, so a malformed comment opener arrives split as
//     Text("<") + Text("!--…").
package md
