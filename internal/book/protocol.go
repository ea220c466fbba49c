package book

import (
	"encoding/json"
	"fmt"
	"io"
)

// Context is the preprocessor context mdbook sends ahead of the book.
type Context struct {
	Root          string `json:"root"`
	Config        Config `json:"config"`
	Renderer      string `json:"renderer"`
	MdbookVersion string `json:"mdbook_version"`
}

// Config is the deserialized book.toml configuration.
type Config map[string]json.RawMessage

// Preprocessor returns the configuration table for the named preprocessor,
// or nil when absent.
func (c Config) Preprocessor(name string) map[string]any {
	raw, ok := c["preprocessor"]
	if !ok {
		return nil
	}
	var tables map[string]map[string]any
	if err := json.Unmarshal(raw, &tables); err != nil {
		return nil
	}
	return tables[name]
}

// ParseInput decodes the `[context, book]` pair mdbook writes to the
// preprocessor's stdin.
func ParseInput(r io.Reader) (*Context, *Book, error) {
	var pair []json.RawMessage
	if err := json.NewDecoder(r).Decode(&pair); err != nil {
		return nil, nil, fmt.Errorf("failed to parse preprocessor input: %w", err)
	}
	if len(pair) != 2 {
		return nil, nil, fmt.Errorf("malformed preprocessor input: expected [context, book], got %d elements", len(pair))
	}
	var ctx Context
	if err := json.Unmarshal(pair[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to parse preprocessor context: %w", err)
	}
	var b Book
	if err := json.Unmarshal(pair[1], &b); err != nil {
		return nil, nil, fmt.Errorf("failed to parse book: %w", err)
	}
	return &ctx, &b, nil
}

// WriteBook encodes the processed book to the preprocessor's stdout.
// Nothing is written when encoding fails.
func WriteBook(w io.Writer, b *Book) error {
	out, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to encode book: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("failed to write book: %w", err)
	}
	return nil
}
