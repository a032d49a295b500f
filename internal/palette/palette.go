package palette

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lilypad-editor/core/internal/block"
)

// Entry is one draggable snippet: the literal text to insert and the
// category it renders as while it sits in the palette (before it's
// ever parsed into a real syntax tree).
type Entry struct {
	Name     string
	Category block.Category
	Text     string
}

// Palette is the ordered set of entries offered for one language.
type Palette struct {
	Language string
	Entries  []Entry
}

type document struct {
	Language string          `yaml:"language"`
	Entries  []documentEntry `yaml:"entries"`
}

type documentEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Text     string `yaml:"text"`
}

// Parse decodes a palette document from YAML. Unknown category names
// fall back to Generic rather than erroring, since a host-authored
// palette file predates whatever categories a future block-builder
// version might add.
func Parse(data []byte) (Palette, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Palette{}, fmt.Errorf("palette: parsing yaml: %w", err)
	}

	p := Palette{Language: doc.Language, Entries: make([]Entry, 0, len(doc.Entries))}
	for _, e := range doc.Entries {
		p.Entries = append(p.Entries, Entry{
			Name:     e.Name,
			Category: categoryFromName(e.Category),
			Text:     e.Text,
		})
	}
	return p, nil
}

func categoryFromName(name string) block.Category {
	switch name {
	case "Object":
		return block.Object
	case "FunctionDef":
		return block.FunctionDef
	case "While":
		return block.While
	case "If":
		return block.If
	case "For":
		return block.For
	case "Try":
		return block.Try
	case "Switch":
		return block.Switch
	case "Comment":
		return block.Comment
	default:
		return block.Generic
	}
}
