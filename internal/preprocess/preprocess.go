package preprocess

import (
	"fmt"
	"io"
	"slices"

	"golang.org/x/sync/errgroup"

	"nocomment/internal/book"
	"nocomment/internal/cache"
	"nocomment/internal/config"
	"nocomment/internal/md"
	"nocomment/internal/scrub"
	"nocomment/internal/trace"
	"nocomment/internal/version"
)

// Preprocessor mirrors mdbook's preprocessor contract: transform the book,
// and answer renderer-support queries.
type Preprocessor interface {
	Name() string
	Run(ctx *book.Context, b *book.Book) (*book.Book, error)
	SupportsRenderer(renderer string) bool
}

// NotSupportedRenderer is the reserved sentinel name that is always
// reported as unsupported, used for negative testing.
const NotSupportedRenderer = "not-supported"

// NoComment removes HTML comments from every chapter of a book.
type NoComment struct {
	opts   config.Options
	tracer trace.Tracer
	store  *cache.Store
}

// New creates a NoComment preprocessor. tracer may be nil.
func New(opts config.Options, tracer trace.Tracer) *NoComment {
	return &NoComment{opts: opts, tracer: tracer}
}

// WithStore attaches a chapter cache.
func (p *NoComment) WithStore(store *cache.Store) *NoComment {
	p.store = store
	return p
}

// Name returns the preprocessor's registered name.
func (p *NoComment) Name() string { return "nocomment-preprocessor" }

// ConfigName returns the book.toml table name ([preprocessor.nocomment]).
func (p *NoComment) ConfigName() string { return "nocomment" }

// SupportsRenderer reports whether the named renderer is supported. Every
// renderer is, except the reserved sentinel and anything excluded by an
// explicit renderers list in the configuration.
func (p *NoComment) SupportsRenderer(renderer string) bool {
	if renderer == NotSupportedRenderer {
		return false
	}
	if len(p.opts.Renderers) == 0 {
		return true
	}
	return slices.Contains(p.opts.Renderers, renderer)
}

// Run scrubs every chapter's content, fanning out across chapters. Draft
// chapters have no content and pass through untouched. The book structure
// itself is never modified, only chapter content strings.
func (p *NoComment) Run(ctx *book.Context, b *book.Book) (*book.Book, error) {
	chapters := b.Chapters()
	trace.Phasef(p.tracer, trace.ScopeBook, "scrubbing %d chapters", len(chapters))

	jobs := p.opts.Jobs
	if jobs <= 0 {
		jobs = 1
	}
	var g errgroup.Group
	g.SetLimit(jobs)
	for _, ch := range chapters {
		if ch.IsDraft() || ch.Content == "" {
			continue
		}
		ch := ch
		g.Go(func() error {
			ch.Content = p.scrubChapter(ch.Name, ch.Content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scrub book: %w", err)
	}
	return b, nil
}

// scrubChapter runs the tokenize/scrub/render round trip for one chapter,
// consulting the cache when one is attached. Cache failures degrade to a
// recompute.
func (p *NoComment) scrubChapter(name, content string) string {
	var key cache.Digest
	if p.store != nil {
		key = cache.Key(content)
		if scrubbed, ok, err := p.store.Get(key); err == nil && ok {
			trace.Phasef(p.tracer, trace.ScopeChapter, "%s: cache hit", name)
			return scrubbed
		}
	}

	out := ScrubMarkdown(content, p.tracer)
	trace.Phasef(p.tracer, trace.ScopeChapter, "%s: scrubbed", name)

	if p.store != nil {
		if err := p.store.Put(key, out); err != nil {
			trace.Debugf(p.tracer, trace.ScopeChapter, "%s: cache write failed: %v", name, err)
		}
	}
	return out
}

// ScrubMarkdown removes HTML comments from one markdown document.
func ScrubMarkdown(src string, tracer trace.Tracer) string {
	events := md.Tokenize(src)
	events = scrub.Scrub(events, scrub.WithTracer(tracer))
	return md.Render(events)
}

// WarnIncompatible writes a version-mismatch warning when the calling
// mdbook's version does not match the one this preprocessor was built
// against. A mismatch is a warning, never an error.
func WarnIncompatible(w io.Writer, p Preprocessor, mdbookVersion string) {
	if version.CompatibleWith(mdbookVersion) {
		return
	}
	fmt.Fprintf(w, "Warning: The %s plugin was built against version %s of mdbook, "+
		"but we're being called from version %s\n",
		p.Name(), version.MdbookVersion, mdbookVersion)
}
