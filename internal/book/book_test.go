package book

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const sampleInput = `[
  {
    "root": "/book",
    "config": {
      "book": {"title": "Example"},
      "preprocessor": {"nocomment": {"cache": true, "jobs": 2}}
    },
    "renderer": "html",
    "mdbook_version": "0.4.40"
  },
  {
    "sections": [
      {"Chapter": {
        "name": "Intro",
        "content": "# Intro\n",
        "number": [1],
        "sub_items": [
          {"Chapter": {
            "name": "Nested",
            "content": "nested\n",
            "number": [1, 1],
            "sub_items": [],
            "path": "nested.md",
            "source_path": "nested.md",
            "parent_names": ["Intro"]
          }}
        ],
        "path": "intro.md",
        "source_path": "intro.md",
        "parent_names": []
      }},
      "Separator",
      {"PartTitle": "Part Two"},
      {"Chapter": {
        "name": "Draft",
        "content": "",
        "number": null,
        "sub_items": [],
        "path": null,
        "source_path": null,
        "parent_names": []
      }}
    ],
    "__non_exhaustive": null
  }
]`

func TestParseInput(t *testing.T) {
	ctx, b, err := ParseInput(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if ctx.Renderer != "html" {
		t.Errorf("renderer: expected html, got %q", ctx.Renderer)
	}
	if ctx.MdbookVersion != "0.4.40" {
		t.Errorf("mdbook_version: expected 0.4.40, got %q", ctx.MdbookVersion)
	}
	if ctx.Root != "/book" {
		t.Errorf("root: expected /book, got %q", ctx.Root)
	}

	if len(b.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(b.Sections))
	}
	if !b.Sections[1].Separator {
		t.Error("expected section 1 to be a separator")
	}
	if b.Sections[2].PartTitle != "Part Two" {
		t.Errorf("expected part title, got %+v", b.Sections[2])
	}

	chapters := b.Chapters()
	if len(chapters) != 3 {
		t.Fatalf("expected 3 chapters (nested included), got %d", len(chapters))
	}
	if chapters[1].Name != "Nested" {
		t.Errorf("expected depth-first order with Nested second, got %q", chapters[1].Name)
	}
	if !chapters[2].IsDraft() {
		t.Error("expected the pathless chapter to be a draft")
	}
}

func TestPreprocessorConfigTable(t *testing.T) {
	ctx, _, err := ParseInput(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	table := ctx.Config.Preprocessor("nocomment")
	if table == nil {
		t.Fatal("expected a [preprocessor.nocomment] table")
	}
	if v, ok := table["cache"].(bool); !ok || !v {
		t.Errorf("expected cache=true, got %v", table["cache"])
	}
	if ctx.Config.Preprocessor("other") != nil {
		t.Error("expected no table for unknown preprocessor")
	}
}

// TestBookRoundTrip checks the wire layout survives a decode/encode pass.
func TestBookRoundTrip(t *testing.T) {
	_, b, err := ParseInput(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteBook(&buf, b); err != nil {
		t.Fatalf("WriteBook: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"Separator"`, `"PartTitle":"Part Two"`, `"__non_exhaustive":null`, `"sub_items":[]`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output: %s", want, out)
		}
	}

	var again Book
	if err := json.Unmarshal(buf.Bytes(), &again); err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if len(again.Sections) != len(b.Sections) {
		t.Errorf("section count changed: %d != %d", len(again.Sections), len(b.Sections))
	}
}

func TestParseInputRejectsGarbage(t *testing.T) {
	if _, _, err := ParseInput(strings.NewReader("not json")); err == nil {
		t.Error("expected an error for malformed input")
	}
	if _, _, err := ParseInput(strings.NewReader(`[{}]`)); err == nil {
		t.Error("expected an error for a one-element array")
	}
}

func TestItemUnmarshalUnknownTag(t *testing.T) {
	var it Item
	if err := json.Unmarshal([]byte(`"Unknown"`), &it); err == nil {
		t.Error("expected an error for an unknown string variant")
	}
}
