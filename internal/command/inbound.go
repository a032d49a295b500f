package command

import "github.com/lilypad-editor/core/internal/edit"

// Command is one message the host sends into the core. The concrete
// types below are the exhaustive set from §4.L; Queue.Drain returns
// them in receipt order at the top of each frame.
type Command interface{ isCommand() }

// SetText replaces the entire document.
type SetText struct{ Text string }

// SetFile replaces the document and switches the active language
// binding by the new file's extension.
type SetFile struct {
	Name     string
	Contents string
}

// SetBlocksTheme switches the active block-color theme by name.
type SetBlocksTheme struct{ Name string }

// SetFont updates the renderer's font metrics.
type SetFont struct {
	Family string
	Size   float64
}

// ApplyEdit applies a host-originated edit; it never fires an Edited
// event back, per §4.L.
type ApplyEdit struct{ Edit edit.TextEdit }

// SetDiagnostics replaces the diagnostic list wholesale.
type SetDiagnostics struct{ Diagnostics []Diagnostic }

// SetQuickFix supplies fixes for one diagnostic id, keyed so a stale
// response for a no-longer-hovered id can be ignored.
type SetQuickFix struct {
	ID    string
	Fixes []string
}

// SetCompletions supplies a raw completion list for the host's most
// recent request.
type SetCompletions struct{ Items []CompletionItem }

// SetHover supplies documentation content for the host's most recent
// hover request.
type SetHover struct {
	Text  string
	Range TextRange
}

// SetBreakpoints replaces the breakpoint line list.
type SetBreakpoints struct{ Lines []uint32 }

// SetStackFrame marks the selected and deepest stack frame lines
// during a debug session.
type SetStackFrame struct {
	Selected uint32
	Deepest  uint32
}

// Undo requests an undo of the last transaction.
type Undo struct{}

// Redo requests a redo of the last undone transaction.
type Redo struct{}

func (SetText) isCommand()        {}
func (SetFile) isCommand()        {}
func (SetBlocksTheme) isCommand() {}
func (SetFont) isCommand()        {}
func (ApplyEdit) isCommand()      {}
func (SetDiagnostics) isCommand() {}
func (SetQuickFix) isCommand()    {}
func (SetCompletions) isCommand() {}
func (SetHover) isCommand()       {}
func (SetBreakpoints) isCommand() {}
func (SetStackFrame) isCommand()  {}
func (Undo) isCommand()           {}
func (Redo) isCommand()           {}

// TextRange mirrors rope.Range's wire shape: two (line, character)
// points, per §6.
type TextRange struct {
	StartLine, StartCol uint32
	EndLine, EndCol     uint32
}

// Diagnostic is one host-reported diagnostic.
type Diagnostic struct {
	ID       string
	Message  string
	Severity int
	Range    TextRange
}

// CompletionItem mirrors popup.CompletionItem's wire shape.
type CompletionItem struct {
	Label      string
	InsertText string
}
