package book

import (
	"encoding/json"
	"fmt"
)

// Book is the mdbook book tree as delivered over the preprocessor
// protocol.
type Book struct {
	Sections []Item
}

// bookJSON mirrors mdbook's serde layout, including the non-exhaustive
// marker field.
type bookJSON struct {
	Sections      []Item          `json:"sections"`
	NonExhaustive json.RawMessage `json:"__non_exhaustive"`
}

// MarshalJSON encodes the book in mdbook's wire layout.
func (b Book) MarshalJSON() ([]byte, error) {
	sections := b.Sections
	if sections == nil {
		sections = []Item{}
	}
	return json.Marshal(bookJSON{Sections: sections, NonExhaustive: json.RawMessage("null")})
}

// UnmarshalJSON decodes the book from mdbook's wire layout.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw bookJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Sections = raw.Sections
	return nil
}

// ForEachChapter calls fn for every chapter in the book, depth first,
// including nested sub-chapters. It stops at the first error.
func (b *Book) ForEachChapter(fn func(*Chapter) error) error {
	return forEach(b.Sections, fn)
}

func forEach(items []Item, fn func(*Chapter) error) error {
	for i := range items {
		ch := items[i].Chapter
		if ch == nil {
			continue
		}
		if err := fn(ch); err != nil {
			return err
		}
		if err := forEach(ch.SubItems, fn); err != nil {
			return err
		}
	}
	return nil
}

// Chapters returns every chapter in the book in document order.
func (b *Book) Chapters() []*Chapter {
	var out []*Chapter
	_ = b.ForEachChapter(func(ch *Chapter) error {
		out = append(out, ch)
		return nil
	})
	return out
}

// Item is one entry of the book tree: a chapter, a separator, or a part
// title. Exactly one field is set.
type Item struct {
	Chapter   *Chapter
	PartTitle string
	Separator bool
}

// MarshalJSON encodes the externally-tagged item union.
func (it Item) MarshalJSON() ([]byte, error) {
	switch {
	case it.Chapter != nil:
		return json.Marshal(map[string]*Chapter{"Chapter": it.Chapter})
	case it.Separator:
		return json.Marshal("Separator")
	default:
		return json.Marshal(map[string]string{"PartTitle": it.PartTitle})
	}
}

// UnmarshalJSON decodes the externally-tagged item union.
func (it *Item) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag != "Separator" {
			return fmt.Errorf("unknown book item %q", tag)
		}
		*it = Item{Separator: true}
		return nil
	}
	var tagged struct {
		Chapter   *Chapter `json:"Chapter"`
		PartTitle *string  `json:"PartTitle"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("book item: %w", err)
	}
	switch {
	case tagged.Chapter != nil:
		*it = Item{Chapter: tagged.Chapter}
	case tagged.PartTitle != nil:
		*it = Item{PartTitle: *tagged.PartTitle}
	default:
		return fmt.Errorf("book item: no recognized variant")
	}
	return nil
}

// Chapter is one book chapter; Content holds its raw markdown.
type Chapter struct {
	Name        string   `json:"name"`
	Content     string   `json:"content"`
	Number      []uint32 `json:"number"`
	SubItems    []Item   `json:"sub_items"`
	Path        *string  `json:"path"`
	SourcePath  *string  `json:"source_path"`
	ParentNames []string `json:"parent_names"`
}

// chapterJSON keeps sub_items and parent_names non-null on the wire, which
// mdbook's deserializer requires.
type chapterJSON Chapter

// MarshalJSON encodes the chapter with mandatory array fields.
func (c Chapter) MarshalJSON() ([]byte, error) {
	cj := chapterJSON(c)
	if cj.SubItems == nil {
		cj.SubItems = []Item{}
	}
	if cj.ParentNames == nil {
		cj.ParentNames = []string{}
	}
	return json.Marshal(cj)
}

// IsDraft reports whether the chapter has no source file and therefore no
// content to process.
func (c *Chapter) IsDraft() bool { return c.Path == nil }
