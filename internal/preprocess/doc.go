// Package preprocess implements the nocomment mdbook preprocessor: it
// runs the tokenize/scrub/render round trip over every chapter of a book,
// in parallel, with an optional content-addressed cache in front.
package preprocess
