package preprocess

import (
	"strings"
	"testing"

	"nocomment/internal/book"
	"nocomment/internal/cache"
	"nocomment/internal/config"
)

func strptr(s string) *string { return &s }

func chapter(name, content string) book.Item {
	return book.Item{Chapter: &book.Chapter{
		Name:    name,
		Content: content,
		Path:    strptr(strings.ToLower(name) + ".md"),
	}}
}

func TestName(t *testing.T) {
	p := New(config.Default(), nil)
	if p.Name() != "nocomment-preprocessor" {
		t.Errorf("unexpected name %q", p.Name())
	}
}

func TestSupportsRenderer(t *testing.T) {
	p := New(config.Default(), nil)
	if !p.SupportsRenderer("html") {
		t.Error("html must be supported by default")
	}
	if !p.SupportsRenderer("epub") {
		t.Error("arbitrary renderers must be supported by default")
	}
	if p.SupportsRenderer(NotSupportedRenderer) {
		t.Error("the reserved sentinel must never be supported")
	}
}

func TestSupportsRendererNarrowed(t *testing.T) {
	opts := config.Default()
	opts.Renderers = []string{"html"}
	p := New(opts, nil)
	if !p.SupportsRenderer("html") {
		t.Error("listed renderer must be supported")
	}
	if p.SupportsRenderer("epub") {
		t.Error("unlisted renderer must not be supported")
	}
	opts.Renderers = []string{"html", NotSupportedRenderer}
	if New(opts, nil).SupportsRenderer(NotSupportedRenderer) {
		t.Error("the sentinel stays unsupported even when listed")
	}
}

func TestRunScrubsAllChapters(t *testing.T) {
	b := &book.Book{Sections: []book.Item{
		chapter("One", "text <!-- double-hyphen -->\n"),
		{Separator: true},
		chapter("Two", "# Two\n\nkeep <!-- gone --> this\n"),
	}}

	got, err := New(config.Default(), nil).Run(nil, b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, ch := range got.Chapters() {
		if strings.Contains(ch.Content, "--") {
			t.Errorf("chapter %s still contains comment markup: %q", ch.Name, ch.Content)
		}
	}
	if !strings.Contains(got.Chapters()[0].Content, "text") {
		t.Errorf("chapter One lost its text: %q", got.Chapters()[0].Content)
	}
	if !strings.Contains(got.Chapters()[1].Content, "keep") || !strings.Contains(got.Chapters()[1].Content, "this") {
		t.Errorf("chapter Two lost surrounding text: %q", got.Chapters()[1].Content)
	}
}

func TestRunScrubsNestedChapters(t *testing.T) {
	parent := chapter("Parent", "parent <!-- x -->\n")
	parent.Chapter.SubItems = []book.Item{chapter("Child", "child <!-- y -->\n")}
	b := &book.Book{Sections: []book.Item{parent}}

	got, err := New(config.Default(), nil).Run(nil, b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, ch := range got.Chapters() {
		if strings.Contains(ch.Content, "<!--") {
			t.Errorf("chapter %s still contains a comment: %q", ch.Name, ch.Content)
		}
	}
}

func TestRunLeavesDraftsAlone(t *testing.T) {
	draft := book.Item{Chapter: &book.Chapter{Name: "Draft", Content: ""}}
	b := &book.Book{Sections: []book.Item{draft}}
	got, err := New(config.Default(), nil).Run(nil, b)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got.Chapters()[0].Content != "" {
		t.Errorf("draft content changed: %q", got.Chapters()[0].Content)
	}
}

func TestRunUsesCache(t *testing.T) {
	store, err := cache.OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	content := "cached <!-- gone -->\n"
	b := &book.Book{Sections: []book.Item{chapter("One", content)}}
	p := New(config.Default(), nil).WithStore(store)

	if _, err := p.Run(nil, b); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	first := b.Chapters()[0].Content

	// Second pass over the same source content must hit the cache and
	// produce identical output.
	scrubbed, ok, err := store.Get(cache.Key(content))
	if err != nil || !ok {
		t.Fatalf("expected a cache entry (ok=%v, err=%v)", ok, err)
	}
	if scrubbed != first {
		t.Errorf("cache entry diverges from output: %q != %q", scrubbed, first)
	}

	b2 := &book.Book{Sections: []book.Item{chapter("One", content)}}
	if _, err := p.Run(nil, b2); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if b2.Chapters()[0].Content != first {
		t.Errorf("cached run diverges: %q != %q", b2.Chapters()[0].Content, first)
	}
}

func TestScrubMarkdown(t *testing.T) {
	out := ScrubMarkdown("text <!-- double-hyphen -->\n", nil)
	if strings.Contains(out, "--") {
		t.Errorf("output still contains comment markup: %q", out)
	}
	if !strings.Contains(out, "text") {
		t.Errorf("output lost text: %q", out)
	}
}

func TestWarnIncompatible(t *testing.T) {
	p := New(config.Default(), nil)

	var buf strings.Builder
	WarnIncompatible(&buf, p, "0.4.40")
	if buf.Len() != 0 {
		t.Errorf("no warning expected for a matching version, got %q", buf.String())
	}

	buf.Reset()
	WarnIncompatible(&buf, p, "0.3.1")
	warning := buf.String()
	if !strings.Contains(warning, "Warning") || !strings.Contains(warning, "0.3.1") {
		t.Errorf("expected a version warning naming 0.3.1, got %q", warning)
	}
	if !strings.Contains(warning, p.Name()) {
		t.Errorf("expected the warning to name the plugin, got %q", warning)
	}
}
