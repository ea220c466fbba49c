package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level      Level
	Output     io.Writer // if nil, use OutputPath
	OutputPath string    // alternative: file path ("-" for stderr)
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	w := cfg.Output
	if w == nil {
		switch cfg.OutputPath {
		case "", "-":
			w = os.Stderr
		default:
			f, err := os.Create(cfg.OutputPath)
			if err != nil {
				return nil, fmt.Errorf("trace output: %w", err)
			}
			w = f
		}
	}
	return NewStreamTracer(w, cfg.Level), nil
}

// StreamTracer writes events as text lines immediately.
type StreamTracer struct {
	mu    sync.Mutex
	w     *bufio.Writer
	c     io.Closer
	level Level
}

// NewStreamTracer creates a tracer writing text lines to w.
func NewStreamTracer(w io.Writer, level Level) *StreamTracer {
	st := &StreamTracer{w: bufio.NewWriter(w), level: level}
	if c, ok := w.(io.Closer); ok && w != os.Stderr && w != os.Stdout {
		st.c = c
	}
	return st
}

// Emit writes a single event if its level is enabled.
func (st *StreamTracer) Emit(ev Event) {
	if ev.Level > st.level {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	fmt.Fprintf(st.w, "%s [%s] %s: %s\n",
		ev.Time.Format("15:04:05.000"), ev.Level, ev.Scope, ev.Msg)
}

// Flush writes any buffered events.
func (st *StreamTracer) Flush() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.w.Flush()
}

// Close flushes and closes the underlying writer if owned.
func (st *StreamTracer) Close() error {
	if err := st.Flush(); err != nil {
		return err
	}
	if st.c != nil {
		return st.c.Close()
	}
	return nil
}

// Level returns the configured level.
func (st *StreamTracer) Level() Level { return st.level }

// Enabled reports whether any events will be emitted.
func (st *StreamTracer) Enabled() bool { return st.level > LevelOff }

// Debugf emits a comment-scope debug event through t, which may be nil.
func Debugf(t Tracer, scope Scope, format string, args ...any) {
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(Event{Level: LevelDebug, Scope: scope, Msg: fmt.Sprintf(format, args...)})
}

// Phasef emits a phase-scope event through t, which may be nil.
func Phasef(t Tracer, scope Scope, format string, args ...any) {
	if t == nil || !t.Enabled() {
		return
	}
	t.Emit(Event{Level: LevelPhase, Scope: scope, Msg: fmt.Sprintf(format, args...)})
}
