package palette

import (
	"testing"

	"github.com/lilypad-editor/core/internal/block"
)

func TestParseDecodesEntries(t *testing.T) {
	data := []byte(`
language: python
entries:
  - name: if statement
    category: If
    text: "if condition:\n    pass"
  - name: for loop
    category: For
    text: "for item in items:\n    pass"
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Language != "python" {
		t.Fatalf("want language python, got %q", p.Language)
	}
	if len(p.Entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(p.Entries))
	}
	if p.Entries[0].Category != block.If {
		t.Fatalf("want If category, got %v", p.Entries[0].Category)
	}
}

func TestParseUnknownCategoryFallsBackToGeneric(t *testing.T) {
	data := []byte(`
language: python
entries:
  - name: mystery
    category: Whatever
    text: "x = 1"
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Entries[0].Category != block.Generic {
		t.Fatalf("want unrecognized category to fall back to Generic, got %v", p.Entries[0].Category)
	}
}
