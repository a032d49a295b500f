package lang

import (
	"unsafe"

	forest "github.com/alexaandru/go-sitter-forest/java"

	"github.com/lilypad-editor/core/internal/block"
)

// Java is a brace-scope binding: the opening '{' on a header line
// drives both block-tree column adjustment (§4.C step 5) and
// braces-hug-body newline insertion (§4.G).
var Java = &Binding{
	Name:           "java",
	Extensions:     []string{"java"},
	NewScopeChar:   '{',
	BraceScope:     true,
	ErrorOutline:   true,
	HighlightQuery: javaHighlightQuery,
	PaletteID:      "java",
	categorize:     categorizeJava,
	stringKinds:    stringKindSet("string_literal", "text_block"),
	grammar:        func() unsafe.Pointer { return forest.GetLanguage() },
}

func categorizeJava(nodeType string) (block.Category, bool) {
	switch nodeType {
	case "class_declaration", "interface_declaration",
		"enum_declaration", "record_declaration":
		return block.Object, true
	case "method_declaration", "constructor_declaration",
		"lambda_expression":
		return block.FunctionDef, true
	case "while_statement", "do_statement":
		return block.While, true
	case "if_statement":
		return block.If, true
	case "for_statement", "enhanced_for_statement":
		return block.For, true
	case "try_statement", "try_with_resources_statement",
		"catch_clause", "finally_clause":
		return block.Try, true
	case "switch_expression", "switch_statement":
		return block.Switch, true
	case "line_comment", "block_comment":
		return block.Comment, true
	case "ERROR":
		return block.Error, true
	case "expression_statement", "local_variable_declaration",
		"return_statement", "throw_statement", "assert_statement",
		"break_statement", "continue_statement", "import_declaration",
		"package_declaration", "field_declaration", "yield_statement":
		return block.Generic, true
	default:
		return 0, false
	}
}

const javaHighlightQuery = `
(class_declaration
  name: (identifier) @type)
(method_declaration
  name: (identifier) @function)
(interface_declaration
  name: (identifier) @type)

(class_body) @local.scope
(method_declaration body: (block) @local.scope)
(for_statement) @local.scope
(block) @local.scope

(formal_parameter name: (identifier) @local.definition)
(local_variable_declaration
  declarator: (variable_declarator name: (identifier) @local.definition.value))
(identifier) @local.reference

[
  "class" "interface" "enum" "record" "if" "else" "for" "while" "do"
  "try" "catch" "finally" "switch" "case" "default" "return" "throw"
  "throws" "new" "public" "private" "protected" "static" "final"
  "void" "import" "package" "extends" "implements" "break" "continue"
  "synchronized" "volatile" "abstract" "this" "super" "yield"
] @keyword

(line_comment) @comment
(block_comment) @comment
(string_literal) @string
(text_block) @string
(decimal_integer_literal) @number
(decimal_floating_point_literal) @number
(true) @constant.builtin
(false) @constant.builtin
(null_literal) @constant.builtin

(method_invocation name: (identifier) @function.method.call)
`
