// Package scrub removes HTML comment spans from a markdown event stream.
//
// A comment span is a maximal run of consecutive events covering one
// <!-- ... --> region. The opener may arrive as a single HTML event or as a
// split pair of text events ("<" followed by "!--...") depending on how the
// tokenizer classified the surrounding markup, and the closer may sit many
// events later, across paragraph boundaries. Spans whose closer never
// appears are left in the stream untouched.
// Invariants:
//   - Output is never longer than input.
//   - Relative order of retained events matches the input.
//   - Events are forwarded or dropped, never rewritten.
package scrub
