package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"

	"nocomment/internal/book"
)

// Options configures the preprocessor. The zero value plus Default's
// fill-ins is a working configuration.
type Options struct {
	// Renderers, when non-empty, narrows renderer support to the listed
	// names.
	Renderers []string
	// Cache enables the scrubbed-chapter disk cache.
	Cache bool
	// Jobs bounds parallel chapter processing.
	Jobs int
	// TraceLevel is the textual trace level (off|error|phase|debug).
	TraceLevel string
}

// Default returns the baseline options.
func Default() Options {
	return Options{Jobs: runtime.GOMAXPROCS(0)}
}

// FromContext overlays the [preprocessor.<name>] table delivered in the
// mdbook JSON context onto base. Unknown keys are ignored; mdbook owns the
// rest of the table.
func FromContext(base Options, ctx *book.Context, name string) Options {
	table := ctx.Config.Preprocessor(name)
	if table == nil {
		return base
	}
	if v, ok := table["renderers"].([]any); ok {
		base.Renderers = base.Renderers[:0]
		for _, r := range v {
			if s, ok := r.(string); ok {
				base.Renderers = append(base.Renderers, s)
			}
		}
	}
	if v, ok := table["cache"].(bool); ok {
		base.Cache = v
	}
	if v, ok := table["jobs"].(float64); ok && int(v) > 0 {
		base.Jobs = int(v)
	}
	if v, ok := table["trace-level"].(string); ok {
		base.TraceLevel = v
	}
	return base
}

type bookTOML struct {
	Preprocessor map[string]tomlTable `toml:"preprocessor"`
}

type tomlTable struct {
	Renderers  []string `toml:"renderers"`
	Cache      bool     `toml:"cache"`
	Jobs       int      `toml:"jobs"`
	TraceLevel string   `toml:"trace-level"`
}

// LoadBookTOML overlays the [preprocessor.<name>] table of a book.toml
// onto base. A missing file or missing table is not an error; the base
// options are returned unchanged.
func LoadBookTOML(base Options, path, name string) (Options, error) {
	if _, err := os.Stat(path); err != nil {
		return base, nil
	}
	var cfg bookTOML
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("preprocessor", name) {
		return base, nil
	}
	table := cfg.Preprocessor[name]
	if meta.IsDefined("preprocessor", name, "renderers") {
		base.Renderers = table.Renderers
	}
	if meta.IsDefined("preprocessor", name, "cache") {
		base.Cache = table.Cache
	}
	if meta.IsDefined("preprocessor", name, "jobs") && table.Jobs > 0 {
		base.Jobs = table.Jobs
	}
	if meta.IsDefined("preprocessor", name, "trace-level") {
		base.TraceLevel = table.TraceLevel
	}
	return base, nil
}
