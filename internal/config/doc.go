// Package config resolves preprocessor options from the two places they
// can live: the [preprocessor.nocomment] table mdbook forwards in the JSON
// context, and a book.toml read directly when running the standalone scrub
// command. Command-line flags overlay both.
package config
