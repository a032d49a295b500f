package lang

import (
	"unsafe"

	forest "github.com/alexaandru/go-sitter-forest/csharp"

	"github.com/lilypad-editor/core/internal/block"
)

// CSharp is a brace-scope binding, same as Java (§4.C step 5, §4.G).
var CSharp = &Binding{
	Name:           "c#",
	Extensions:     []string{"cs"},
	NewScopeChar:   '{',
	BraceScope:     true,
	ErrorOutline:   true,
	HighlightQuery: csharpHighlightQuery,
	PaletteID:      "csharp",
	categorize:     categorizeCSharp,
	stringKinds:    stringKindSet("string_literal", "verbatim_string_literal", "interpolated_string_expression"),
	grammar:        func() unsafe.Pointer { return forest.GetLanguage() },
}

func categorizeCSharp(nodeType string) (block.Category, bool) {
	switch nodeType {
	case "class_declaration", "struct_declaration", "interface_declaration",
		"record_declaration", "enum_declaration", "namespace_declaration":
		return block.Object, true
	case "method_declaration", "constructor_declaration",
		"local_function_statement", "lambda_expression":
		return block.FunctionDef, true
	case "while_statement", "do_statement":
		return block.While, true
	case "if_statement":
		return block.If, true
	case "for_statement", "foreach_statement":
		return block.For, true
	case "try_statement", "catch_clause", "finally_clause":
		return block.Try, true
	case "switch_statement", "switch_expression":
		return block.Switch, true
	case "comment":
		return block.Comment, true
	case "ERROR":
		return block.Error, true
	case "expression_statement", "local_declaration_statement",
		"return_statement", "throw_statement", "break_statement",
		"continue_statement", "using_directive", "yield_statement":
		return block.Generic, true
	default:
		return 0, false
	}
}

const csharpHighlightQuery = `
(class_declaration
  name: (identifier) @type)
(struct_declaration
  name: (identifier) @type)
(method_declaration
  name: (identifier) @function)

(block) @local.scope
(class_body) @local.scope

(parameter name: (identifier) @local.definition)
(variable_declarator name: (identifier) @local.definition.value)
(identifier) @local.reference

[
  "class" "struct" "interface" "enum" "namespace" "if" "else" "for"
  "foreach" "while" "do" "try" "catch" "finally" "switch" "case"
  "default" "return" "throw" "new" "public" "private" "protected"
  "internal" "static" "readonly" "void" "using" "break" "continue"
  "var" "async" "await" "yield" "this" "base"
] @keyword

(comment) @comment
(string_literal) @string
(verbatim_string_literal) @string
(interpolated_string_expression) @string
(integer_literal) @number
(real_literal) @number
(boolean_literal) @constant.builtin
(null_literal) @constant.builtin

(invocation_expression
  function: (member_access_expression name: (identifier) @function.method.call))
`
