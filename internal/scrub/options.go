package scrub

import "nocomment/internal/trace"

// Options configures a scrub pass. The zero value is valid: no tracing.
type Options struct {
	// Tracer receives one debug event per removed comment span. May be nil.
	Tracer trace.Tracer
}

// Option mutates Options.
type Option func(*Options)

// WithTracer attaches a tracer for removed-comment debug output.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) { o.Tracer = t }
}
