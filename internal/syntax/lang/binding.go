package lang

import (
	"unsafe"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/lilypad-editor/core/internal/block"
)

// Categorizer maps a grammar node type to a block category. The bool
// return is false when the node should be lifted into its parent
// instead of becoming a Block of its own (spec §4.C step 1).
type Categorizer func(nodeType string) (block.Category, bool)

// Binding is one language's immutable configuration: everything the
// rest of the core needs without ever inspecting a grammar-specific
// node shape directly.
type Binding struct {
	Name string

	// Extensions lists the file extensions (without dot) that select
	// this binding via the registry.
	Extensions []string

	// NewScopeChar is the character that opens a new indentation
	// scope for this language: ':' for Python, '{' for brace-scope
	// languages.
	NewScopeChar byte

	// BraceScope enables block-tree column adjustment (§4.C step 5)
	// and braces-hug-body newline insertion (§4.G).
	BraceScope bool

	// ErrorOutline enables categorizing tree-sitter ERROR nodes as
	// block.Error (§4.C step 1).
	ErrorOutline bool

	// HighlightQuery is the tree-sitter highlight query source for
	// this grammar, using local.scope/local.definition/
	// local.definition-value/local.reference captures per §4.E.
	HighlightQuery string

	// PaletteID selects this language's block-palette snippet set
	// (internal/palette).
	PaletteID string

	categorize  Categorizer
	stringKinds map[string]struct{}

	grammar  func() unsafe.Pointer
	language *sitter.Language
}

// Language lazily constructs and caches the tree-sitter language
// handle for this binding's grammar.
func (b *Binding) Language() sitter.Language {
	if b.language == nil {
		l := sitter.NewLanguage(b.grammar())
		b.language = &l
	}
	return *b.language
}

// Categorize implements the step-1 fold decision for a grammar node
// type. It never sees a syntax.Node — only the type string — so lang
// need not import syntax.
func (b *Binding) Categorize(nodeType string) (block.Category, bool) {
	if b.categorize == nil {
		return 0, false
	}
	return b.categorize(nodeType)
}

// IsStringNode reports whether nodeType denotes a string literal node
// for this language, used by pseudo-selection (§4.F).
func (b *Binding) IsStringNode(nodeType string) bool {
	_, ok := b.stringKinds[nodeType]
	return ok
}

func stringKindSet(kinds ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		m[k] = struct{}{}
	}
	return m
}
