// Package event defines the markdown event stream shared by the tokenizer,
// the scrubber, and the renderers.
// Invariants:
//   - Every Start* kind has a matching End* kind and they nest properly.
//   - Text/Code/HTML payloads are slices of the original source or exact
//     copies; events are never mutated downstream, only forwarded or dropped.
//   - HTML block lines keep their trailing newline in the payload; inline
//     HTML fragments do not.
package event
