// Package book models the mdbook book tree and its preprocessor protocol:
// a JSON `[context, book]` pair on stdin, the processed book as JSON on
// stdout. The types round-trip mdbook's serde layout, including the
// externally-tagged BookItem union and the non-null array fields its
// deserializer insists on.
package book
