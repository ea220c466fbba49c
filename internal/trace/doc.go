// Package trace provides leveled tracing for the preprocessor.
//
// Enable tracing via the command line:
//
//	mdbook-nocomment --trace-level=debug < input.json
//
// Levels:
//
//   - LevelOff: no tracing
//   - LevelError: failures only
//   - LevelPhase: book and chapter boundaries
//   - LevelDebug: everything, including each removed comment span
//
// The scrubber and the preprocessor accept a Tracer; Nop is used when
// tracing is disabled so hot paths pay nothing.
package trace
