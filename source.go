// Package lilypad wires the core's modules (A-L) into a single
// frame-driven Source, the facade a host embeds: one inbound command
// queue, one outbound event sink, regenerated derived state only when
// dirty, per §5's single-threaded cooperative model.
package lilypad

import (
	"context"

	"github.com/lilypad-editor/core/internal/block"
	"github.com/lilypad-editor/core/internal/command"
	"github.com/lilypad-editor/core/internal/config"
	"github.com/lilypad-editor/core/internal/drag"
	"github.com/lilypad-editor/core/internal/edit"
	"github.com/lilypad-editor/core/internal/highlight"
	"github.com/lilypad-editor/core/internal/history"
	"github.com/lilypad-editor/core/internal/padding"
	"github.com/lilypad-editor/core/internal/palette"
	"github.com/lilypad-editor/core/internal/popup"
	"github.com/lilypad-editor/core/internal/rope"
	"github.com/lilypad-editor/core/internal/search"
	"github.com/lilypad-editor/core/internal/selection"
	"github.com/lilypad-editor/core/internal/syntax"
	"github.com/lilypad-editor/core/internal/syntax/lang"
	"github.com/lilypad-editor/core/internal/theme"
)

// Source is the top-level editor core. A host creates one per open
// document.
type Source struct {
	rp      rope.Rope
	cursor  rope.Range
	bridge  *syntax.Bridge
	binding *lang.Binding

	blocks  *block.Tree
	padVec  padding.Vector
	hi      *highlight.Engine
	hiEvts  []highlight.Event

	stacks  edit.Stacks
	hist    *history.Manager
	pseudo  *rope.Range

	dragSess *drag.Session
	search   *search.Cursor

	completion   popup.Completion
	diagnostic   popup.Diagnostic
	documentation popup.Documentation

	themes *theme.Registry
	cfg    config.Config

	queue *command.Queue
	sink  command.Sink

	dirty bool
}

// New returns a Source with default configuration and the Python
// binding selected, ready to receive a SetText or SetFile command.
func New(cfg config.Config, sink command.Sink) *Source {
	s := &Source{
		hist:    history.New(),
		themes:  theme.NewRegistry(),
		cfg:     cfg,
		queue:   command.NewQueue(),
		sink:    sink,
		binding: lang.Python,
	}
	s.bridge = syntax.NewBridge(*s.binding)
	return s
}

// Post enqueues an inbound command for processing at the next Tick.
func (s *Source) Post(c command.Command) bool { return s.queue.Post(c) }

// Tick runs one frame: drain the inbound queue, then regenerate
// derived state if dirty. It does not itself consume raw input
// events — a host translates those into edit.* / selection.* calls
// and ApplyEdit/Edited commands/events around its own Tick calls.
func (s *Source) Tick(ctx context.Context) error {
	for _, c := range s.queue.Drain() {
		if err := s.apply(ctx, c); err != nil {
			s.emit(command.TelemetryCrash{Message: err.Error()})
			continue
		}
	}
	if s.dirty {
		if err := s.rebuild(ctx); err != nil {
			return err
		}
		s.dirty = false
	}
	return nil
}

func (s *Source) apply(ctx context.Context, c command.Command) error {
	switch cmd := c.(type) {
	case command.SetText:
		return s.setText(ctx, cmd.Text)
	case command.SetFile:
		if b, ok := lang.Named(extToLanguageName(cmd.Name)); ok {
			s.binding = b
		} else {
			s.binding = lang.ForExtension(extOf(cmd.Name))
		}
		s.bridge.Close()
		s.bridge = syntax.NewBridge(*s.binding)
		return s.setText(ctx, cmd.Contents)
	case command.SetBlocksTheme:
		s.themes.Lookup(cmd.Name) // validated by Lookup's own fallback
		s.cfg.Theme.Name = cmd.Name
	case command.SetFont:
		s.cfg.Font.Family = cmd.Family
		s.cfg.Font.Size = cmd.Size
	case command.ApplyEdit:
		s.applyTextEdit(ctx, cmd.Edit, false, history.StopNever)
	case command.SetDiagnostics:
		_ = cmd.Diagnostics // surfaced to the renderer via a future Diagnostics() accessor
	case command.SetQuickFix:
		s.diagnostic.SetFixes(cmd.ID, cmd.Fixes)
	case command.SetCompletions:
		s.completion.Accept(toPopupItems(cmd.Items), s.wordLeftOfCursor())
	case command.SetHover:
		s.documentation.SetContent(s.cursor.End, cmd.Text)
	case command.SetBreakpoints:
		_ = cmd.Lines // surfaced to the renderer via a future Breakpoints() accessor
	case command.SetStackFrame:
		_ = cmd // surfaced to the renderer via a future StackFrame() accessor
	case command.Undo:
		s.undo()
	case command.Redo:
		s.redo()
	}
	return nil
}

func (s *Source) setText(ctx context.Context, text string) error {
	s.rp = rope.FromString(text)
	s.cursor = rope.NewCursorRange(rope.Point{})
	s.hist = history.New()
	s.stacks.Clear()
	if err := s.bridge.Replace(ctx, []byte(text)); err != nil {
		return err
	}
	s.dirty = true
	s.emit(command.Started{})
	return nil
}

// applyTextEdit applies e to the document, updates the syntax tree
// incrementally, and records history unless the edit originated from
// the host (§4.L: ApplyEdit never fires Edited). policy is the
// stop-before hint passed to history.Manager.Record and is ignored
// when local is false.
func (s *Source) applyTextEdit(ctx context.Context, e edit.TextEdit, local bool, policy history.StopPolicy) {
	before := s.rp
	ordered := e.Range.Ordered()
	startByte := uint32(before.ByteOffsetAt(ordered.Start))
	oldEndByte := uint32(before.ByteOffsetAt(ordered.End))

	s.rp = before.Replace(int(startByte), int(oldEndByte), e.Text)
	newEndByte := startByte + uint32(len(e.Text))

	desc := syntax.EditDescriptor{
		StartByte:   startByte,
		OldEndByte:  oldEndByte,
		NewEndByte:  newEndByte,
		StartPoint:  bytePoint(before, int(startByte)),
		OldEndPoint: bytePoint(before, int(oldEndByte)),
		NewEndPoint: bytePoint(s.rp, int(newEndByte)),
	}
	_ = s.bridge.Update(ctx, []byte(s.rp.String()), desc)

	s.cursor = rope.NewCursorRange(e.NewEnd)
	s.dirty = true

	if local {
		s.hist.Record(before, e, policy)
		s.emit(command.Edited{
			Text: e.Text,
			Range: command.TextRange{
				StartLine: ordered.Start.Line, StartCol: ordered.Start.Col,
				EndLine: ordered.End.Line, EndCol: ordered.End.Col,
			},
		})
	}
}

func (s *Source) undo() {
	applied, newCursor, ok := s.hist.Undo()
	if !ok {
		return
	}
	s.replayInverse(applied, newCursor)
}

func (s *Source) redo() {
	applied, newCursor, ok := s.hist.Redo()
	if !ok {
		return
	}
	s.replayInverse(applied, newCursor)
}

// replayInverse applies a sequence of already-computed inverse edits
// directly to the rope without going through applyTextEdit (which
// would record them again), then re-derives the syntax tree from
// scratch — undo/redo is rare enough that a full re-parse is simpler
// and safer than chaining incremental point edits backwards.
func (s *Source) replayInverse(edits []edit.TextEdit, newCursor rope.Point) {
	text := s.rp.String()
	for _, e := range edits {
		ordered := e.Range.Ordered()
		rp := rope.FromString(text)
		start := rp.ByteOffsetAt(ordered.Start)
		end := rp.ByteOffsetAt(ordered.End)
		text = text[:start] + e.Text + text[end:]
	}
	s.rp = rope.FromString(text)
	s.cursor = rope.NewCursorRange(newCursor)
	_ = s.bridge.Replace(context.Background(), []byte(text))
	s.dirty = true
}

// rebuild regenerates the block tree, padding vector, and highlight
// stream from the current syntax tree, per §5's "iff dirty" rule.
func (s *Source) rebuild(ctx context.Context) error {
	cur, err := s.bridge.Cursor()
	if err != nil {
		return err
	}

	rp := s.rp
	categorize := func(nodeType string) (block.Category, bool) { return s.binding.Categorize(nodeType) }
	lineCol := func(row uint32, byteCol uint32) uint32 {
		line := rp.LineText(row)
		if int(byteCol) > len(line) {
			byteCol = uint32(len(line))
		}
		return uint32(len([]rune(line[:byteCol])))
	}
	isBlank := func(line uint32) bool {
		if line >= rp.LineCount() {
			return true
		}
		return isWhitespaceOnly(rp.LineText(line))
	}
	indentCol := func(line uint32) uint32 {
		if line >= rp.LineCount() {
			return 0
		}
		return uint32(len(currentIndent(rp.LineText(line))))
	}

	s.blocks = block.Build(cur, categorize, lineCol, isBlank, indentCol, s.binding.BraceScope)
	s.padVec = padding.Build(s.blocks, int(rp.LineCount()))

	tree, ok := s.bridge.Tree()
	if !ok {
		return nil
	}
	eng, err := highlight.New(s.binding.Language(), s.binding.HighlightQuery, nil)
	if err != nil {
		return err
	}
	s.hi = eng
	events, err := eng.Run(tree.RootNode(), []byte(rp.String()))
	if err != nil {
		return err
	}
	s.hiEvts = events
	s.updatePseudo()
	return nil
}

// updatePseudo recomputes the string-literal pseudo-selection for the
// current cursor, cleared whenever it no longer applies.
func (s *Source) updatePseudo() {
	cur, err := s.bridge.Cursor()
	if err != nil {
		s.pseudo = nil
		return
	}
	isString := func(nodeType string) bool { return s.binding.IsStringNode(nodeType) }
	if rng, ok := selection.Pseudo(s.rp, cur, s.cursor, isString); ok {
		s.pseudo = &rng
	} else {
		s.pseudo = nil
	}
}

// Text returns the current document text.
func (s *Source) Text() string { return s.rp.String() }

// Blocks returns the current block tree.
func (s *Source) Blocks() *block.Tree { return s.blocks }

// Padding returns the current padding vector.
func (s *Source) Padding() padding.Vector { return s.padVec }

// HighlightEvents returns the current highlight event stream.
func (s *Source) HighlightEvents() []highlight.Event { return s.hiEvts }

// Cursor returns the current selection range.
func (s *Source) Cursor() rope.Range { return s.cursor }

// InsertCharacter types ch at the cursor, handling paired-bracket and
// quote auto-insertion, and records it as a local edit.
func (s *Source) InsertCharacter(ctx context.Context, ch string) {
	e, newRng := edit.InsertCharacter(s.rp, s.cursor, &s.stacks, ch)
	s.cursor = newRng
	if e != nil {
		// §4.H's Never policy carries the space/opener special cases
		// that split a typed run into separate undo stops (S6); using
		// IfNotMerged here would instead let a run merge straight
		// through a trailing space.
		s.applyTextEdit(ctx, *e, true, history.StopNever)
	}
}

// Backspace deletes one unit left of the cursor.
func (s *Source) Backspace(ctx context.Context, horizontalGraphemeLeft bool) {
	e, newRng := edit.Backspace(s.rp, s.cursor, &s.stacks, s.pseudo, horizontalGraphemeLeft)
	s.cursor = newRng
	if e != nil {
		s.applyTextEdit(ctx, *e, true, history.StopIfNotMerged)
	}
}

// InsertNewline inserts a line break at the cursor, applying the
// active language's scope-char and braces-hug-body rules.
func (s *Source) InsertNewline(ctx context.Context, lb rope.LineBreak) {
	e, newRng := edit.InsertNewline(s.rp, s.cursor, s.binding.NewScopeChar, s.binding.BraceScope, lb)
	s.cursor = newRng
	s.applyTextEdit(ctx, *e, true, history.StopIfNotMerged)
}

// Indent and Unindent re-align the selection's lines by one step.
func (s *Source) Indent(ctx context.Context) {
	e, newRng := edit.Indent(s.rp, s.cursor)
	s.cursor = newRng
	s.applyTextEdit(ctx, *e, true, history.StopIfNotMerged)
}

func (s *Source) Unindent(ctx context.Context) {
	e, newRng := edit.Unindent(s.rp, s.cursor)
	s.cursor = newRng
	s.applyTextEdit(ctx, *e, true, history.StopIfNotMerged)
}

// MoveCursor moves the cursor by one grapheme or word and clears the
// auxiliary edit stacks, per §4.H's non-undoable cursor-move rule.
func (s *Source) MoveCursor(forward, expanding, byWord bool) {
	if byWord {
		s.cursor = selection.MoveWord(s.rp, s.cursor, forward, expanding)
	} else {
		s.cursor = selection.MoveGrapheme(s.rp, s.cursor, forward, expanding)
	}
	s.externalCursorMove()
	s.updatePseudo()
}

func (s *Source) externalCursorMove() {
	s.stacks.Clear()
	s.hist.ExternalCursorMove()
	s.pseudo = nil
	s.completion.Close()
	s.diagnostic.Close()
}

// StartDrag begins a block-drag session at a resolved document point.
func (s *Source) StartDrag(ctx context.Context, p rope.Point, pointerX, pointerY, blockTopLeftX, blockTopLeftY float64) bool {
	sess, delEdit, ok := drag.Start(s.rp, s.blocks, p, pointerX, pointerY, blockTopLeftX, blockTopLeftY)
	if !ok {
		return false
	}
	s.dragSess = sess
	s.applyTextEdit(ctx, *delEdit, true, history.StopAlways)
	return true
}

// DropDrag completes an active drag at a resolved drop line.
func (s *Source) DropDrag(ctx context.Context, dropLine uint32, pointerCol int, isEOF bool) bool {
	if s.dragSess == nil {
		return false
	}
	target := drag.ResolveDrop(s.rp, dropLine, s.binding.NewScopeChar)
	indent := drag.DropIndent(target, pointerCol, s.binding.BraceScope)
	e := drag.Drop(s.rp, s.dragSess, target, indent, isEOF)

	s.applyTextEdit(ctx, *e, true, history.StopNever)
	s.stacks.Clear()
	s.hist.ExternalCursorMove() // stop-after, per §4.I's drop policy
	s.cursor = rope.NewCursorRange(drag.CursorAfterDrop(e))
	s.dragSess = nil
	s.dirty = true
	_ = ctx
	return true
}

// Search runs a document-wide search and arms the search popup cursor.
func (s *Source) Search(pattern string) {
	s.search = search.NewCursor(search.Search(s.rp, pattern))
}

// SearchNext and SearchPrev move the search cursor, wrapping around.
func (s *Source) SearchNext() (rope.Range, bool) {
	if s.search == nil {
		return rope.Range{}, false
	}
	return s.search.Next()
}

func (s *Source) SearchPrev() (rope.Range, bool) {
	if s.search == nil {
		return rope.Range{}, false
	}
	return s.search.Prev()
}

// RequestCompletions arms the completion popup and emits the host
// request, per §4.K/§4.L.
func (s *Source) RequestCompletions() {
	s.completion.Request(s.cursor.End)
	s.emit(command.RequestCompletions{Line: s.cursor.End.Line, Col: s.cursor.End.Col})
}

// ConfirmCompletion applies the selected completion item as an edit.
func (s *Source) ConfirmCompletion(ctx context.Context) bool {
	wordStart := s.wordLeftStart()
	indent := currentIndent(s.rp.LineText(s.cursor.End.Line))
	e, ok := s.completion.Confirm(s.cursor.End, wordStart, indent)
	if !ok {
		return false
	}
	s.applyTextEdit(ctx, *e, true, history.StopIfNotMerged)
	s.completion.Close()
	return true
}

func (s *Source) wordLeftOfCursor() string {
	start := s.wordLeftStart()
	end := s.cursor.End
	if start.Line != end.Line {
		return ""
	}
	line := s.rp.LineText(end.Line)
	runes := []rune(line)
	if int(start.Col) > len(runes) || int(end.Col) > len(runes) || start.Col > end.Col {
		return ""
	}
	return string(runes[start.Col:end.Col])
}

func (s *Source) wordLeftStart() rope.Point {
	end := s.cursor.End
	line := s.rp.LineText(end.Line)
	runes := []rune(line)
	col := int(end.Col)
	for col > 0 && popup.IsWordRune(runes[col-1]) {
		col--
	}
	return rope.Point{Line: end.Line, Col: uint32(col)}
}

// Palette parses data (a host-supplied YAML palette document). It
// does not check the document against the active language.
func (s *Source) Palette(data []byte) (palette.Palette, error) {
	return palette.Parse(data)
}

func (s *Source) emit(e command.Event) {
	if s.sink != nil {
		s.sink(e)
	}
}

func toPopupItems(items []command.CompletionItem) []popup.CompletionItem {
	out := make([]popup.CompletionItem, len(items))
	for i, it := range items {
		out[i] = popup.CompletionItem{Label: it.Label, InsertText: it.InsertText}
	}
	return out
}

// bytePoint converts a byte offset to a syntax.Point whose Column is
// tree-sitter's byte column within the row, never a character column
// (the same distinction the block builder's LineCol callback exists
// to bridge in the other direction).
func bytePoint(rp rope.Rope, offset int) syntax.Point {
	p := rp.PointAt(offset)
	lineStart := rp.LineStartOffset(p.Line)
	return syntax.Point{Row: p.Line, Column: uint32(offset - lineStart)}
}

func isWhitespaceOnly(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

func currentIndent(line string) string {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return line[:n]
}

func extOf(filename string) string {
	for i := len(filename) - 1; i >= 0 && filename[i] != '/'; i-- {
		if filename[i] == '.' {
			return filename[i+1:]
		}
	}
	return ""
}

func extToLanguageName(filename string) string {
	switch extOf(filename) {
	case "py", "pyi", "pyw":
		return "python"
	case "java":
		return "java"
	case "cs":
		return "c#"
	default:
		return ""
	}
}
