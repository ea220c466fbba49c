package trace

import "time"

// Scope indicates the granularity level of the event.
type Scope uint8

const (
	// ScopeBook represents top-level book processing.
	ScopeBook Scope = iota + 1
	// ScopeChapter represents per-chapter processing.
	ScopeChapter
	// ScopeComment represents individual removed comment spans.
	ScopeComment
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeBook:
		return "book"
	case ScopeChapter:
		return "chapter"
	case ScopeComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Event is a single trace record.
type Event struct {
	Time  time.Time
	Level Level
	Scope Scope
	Msg   string
}
