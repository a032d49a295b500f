package lang

import (
	"unsafe"

	forest "github.com/alexaandru/go-sitter-forest/python"

	"github.com/lilypad-editor/core/internal/block"
)

// Python is the fallback binding (§6: unrecognized extensions resolve
// here). Its new-scope character is ':', so it never participates in
// brace-scope column adjustment or braces-hug-body newlines.
var Python = &Binding{
	Name:           "python",
	Extensions:     []string{"py", "pyi", "pyw"},
	NewScopeChar:   ':',
	BraceScope:     false,
	ErrorOutline:   true,
	HighlightQuery: pythonHighlightQuery,
	PaletteID:      "python",
	categorize:     categorizePython,
	stringKinds:    stringKindSet("string", "concatenated_string"),
	grammar:        func() unsafe.Pointer { return forest.GetLanguage() },
}

func categorizePython(nodeType string) (block.Category, bool) {
	switch nodeType {
	case "class_definition":
		return block.Object, true
	case "function_definition", "lambda":
		return block.FunctionDef, true
	case "while_statement":
		return block.While, true
	case "if_statement", "elif_clause", "else_clause":
		return block.If, true
	case "for_statement":
		return block.For, true
	case "try_statement", "except_clause", "finally_clause":
		return block.Try, true
	case "match_statement":
		return block.Switch, true
	case "comment":
		return block.Comment, true
	case "ERROR":
		return block.Error, true
	case "expression_statement", "return_statement", "assert_statement",
		"pass_statement", "break_statement", "continue_statement",
		"raise_statement", "import_statement", "import_from_statement",
		"global_statement", "nonlocal_statement", "delete_statement",
		"with_statement", "decorated_definition":
		return block.Generic, true
	default:
		return 0, false
	}
}

// pythonHighlightQuery follows tree-sitter's conventional highlights
// query shape, adding local.scope/local.definition/local.reference
// captures per §4.E so the highlight engine can resolve identifiers to
// their binding site.
const pythonHighlightQuery = `
(function_definition
  name: (identifier) @function)
(class_definition
  name: (identifier) @type)

(function_definition) @local.scope
(lambda) @local.scope
(block) @local.scope

(parameters (identifier) @local.definition)
(assignment left: (identifier) @local.definition.value)
(identifier) @local.reference

[
  "def" "class" "if" "elif" "else" "for" "while" "try" "except"
  "finally" "with" "return" "import" "from" "as" "pass" "break"
  "continue" "raise" "lambda" "match" "case" "global" "nonlocal"
  "async" "await" "del" "assert" "yield"
] @keyword

(comment) @comment
(string) @string
(integer) @number
(float) @number
(true) @constant.builtin
(false) @constant.builtin
(none) @constant.builtin

(call
  function: (identifier) @function.call)
(call
  function: (attribute attribute: (identifier) @function.method.call))
`
