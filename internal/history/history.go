package history

import (
	"strings"

	"github.com/lilypad-editor/core/internal/edit"
	"github.com/lilypad-editor/core/internal/rope"
)

// MaxItems is the stack's max length threshold. When exceeded, the
// oldest items are drained up to and including the first Stop so the
// remaining stack never begins mid-transaction.
const MaxItems = 30

// Kind discriminates an UndoItem.
type Kind int

const (
	KindEdit Kind = iota
	KindStop
)

// Item is one entry on the stack: either an edit (carrying both the
// forward edit that produced it and its precomputed inverse) or a
// Stop marker delimiting an atomic user action.
type Item struct {
	Kind    Kind
	Fwd     edit.TextEdit
	Inverse edit.TextEdit
}

// StopPolicy is the caller's hint for whether a Stop should precede
// the new edit.
type StopPolicy int

const (
	StopAlways StopPolicy = iota
	StopIfNotMerged
	StopNever
)

// Manager holds the undo and redo stacks.
type Manager struct {
	undo []Item
	redo []Item
}

// New returns an empty history manager.
func New() *Manager { return &Manager{} }

// ComputeInverse builds the inverse edit for fwd given the rope state
// immediately before fwd is applied.
func ComputeInverse(before rope.Rope, fwd edit.TextEdit) edit.TextEdit {
	ordered := fwd.Range.Ordered()
	originalText := before.Slice(before.ByteOffsetAt(ordered.Start), before.ByteOffsetAt(ordered.End))
	return edit.TextEdit{
		Text:   originalText,
		Range:  rope.Range{Start: ordered.Start, End: fwd.NewEnd},
		NewEnd: ordered.Start,
		Origin: fwd.Origin,
	}
}

// Record pushes fwd (with its precomputed inverse) per the
// stop-before policy and adjacent-edit merge rule of §4.H, clearing
// the redo stack.
func (m *Manager) Record(before rope.Rope, fwd edit.TextEdit, policy StopPolicy) {
	inverse := ComputeInverse(before, fwd)
	item := Item{Kind: KindEdit, Fwd: fwd, Inverse: inverse}

	// A forced Stop-before (Always, or one of Never's special cases)
	// precedes any merge attempt: the Stop it inserts separates this
	// edit from the prior one, making merge moot. Otherwise a merge is
	// attempted first, and IfNotMerged falls back to a Stop only when
	// it fails.
	if m.forcedStopBefore(policy, fwd) {
		if !m.topIsStop() {
			m.undo = append(m.undo, Item{Kind: KindStop})
		}
		m.undo = append(m.undo, item)
		m.redo = nil
		m.evict()
		return
	}

	if top, ok := m.topEdit(); ok {
		if merged, ok := tryMerge(top, item); ok {
			m.undo[len(m.undo)-1] = merged
			m.redo = nil
			m.evict()
			return
		}
	}

	if policy == StopIfNotMerged && !m.topIsStop() {
		m.undo = append(m.undo, Item{Kind: KindStop})
	}
	m.undo = append(m.undo, item)
	m.redo = nil
	m.evict()
}

func (m *Manager) forcedStopBefore(policy StopPolicy, fwd edit.TextEdit) bool {
	switch policy {
	case StopAlways:
		return true
	case StopNever:
		if fwd.Text == " " {
			if top, ok := m.topEdit(); ok && !strings.HasSuffix(top.Fwd.Text, " ") {
				return true
			}
		}
		if fwd.Text != "" && strings.ContainsRune("([{:\"'.", rune(fwd.Text[0])) {
			return true
		}
	}
	return false
}

func (m *Manager) topEdit() (Item, bool) {
	if len(m.undo) == 0 {
		return Item{}, false
	}
	top := m.undo[len(m.undo)-1]
	if top.Kind != KindEdit {
		return Item{}, false
	}
	return top, true
}

func (m *Manager) topIsStop() bool {
	if len(m.undo) == 0 {
		return false
	}
	return m.undo[len(m.undo)-1].Kind == KindStop
}

// tryMerge implements the merge rule: two inserts where
// A.new_end == B.range.start merge into insert(A.text+B.text) at
// A.range; two deletes where A.range.end == B.range.start merge into
// delete(A.range.start..B.range.end).
func tryMerge(a, b Item) (Item, bool) {
	aIsInsert := a.Fwd.Range.IsCursor() && a.Fwd.Text != ""
	bIsInsert := b.Fwd.Range.IsCursor() && b.Fwd.Text != ""
	aIsDelete := a.Fwd.Text == "" && !a.Fwd.Range.IsCursor()
	bIsDelete := b.Fwd.Text == "" && !b.Fwd.Range.IsCursor()

	switch {
	case aIsInsert && bIsInsert && a.Fwd.NewEnd == b.Fwd.Range.Start:
		fwd := edit.TextEdit{
			Text:   a.Fwd.Text + b.Fwd.Text,
			Range:  a.Fwd.Range,
			NewEnd: b.Fwd.NewEnd,
			Origin: a.Fwd.Origin,
		}
		inverse := edit.TextEdit{
			Text:   a.Inverse.Text,
			Range:  rope.Range{Start: a.Fwd.Range.Start, End: b.Fwd.NewEnd},
			NewEnd: a.Fwd.Range.Start,
			Origin: a.Inverse.Origin,
		}
		return Item{Kind: KindEdit, Fwd: fwd, Inverse: inverse}, true

	case aIsDelete && bIsDelete && a.Fwd.Range.End == b.Fwd.Range.Start:
		fwd := edit.TextEdit{
			Text:   "",
			Range:  rope.Range{Start: a.Fwd.Range.Start, End: b.Fwd.Range.End},
			NewEnd: a.Fwd.Range.Start,
			Origin: a.Fwd.Origin,
		}
		inverse := edit.TextEdit{
			Text:   a.Inverse.Text + b.Inverse.Text,
			Range:  rope.Range{Start: a.Fwd.Range.Start, End: a.Fwd.Range.Start},
			NewEnd: b.Inverse.NewEnd,
			Origin: a.Inverse.Origin,
		}
		return Item{Kind: KindEdit, Fwd: fwd, Inverse: inverse}, true
	}
	return Item{}, false
}

func (m *Manager) evict() {
	for len(m.undo) > MaxItems {
		idx := -1
		for i, it := range m.undo {
			if it.Kind == KindStop {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}
		m.undo = append([]Item(nil), m.undo[idx+1:]...)
	}
}

// Undo drops a Stop sitting on top of the stack, then pops edits down
// to the next Stop (which stays on the stack), returning the inverse
// edits to apply in order and the resulting cursor point, per §4.H.
func (m *Manager) Undo() ([]edit.TextEdit, rope.Point, bool) {
	return m.unwind(&m.undo, &m.redo, func(it Item) edit.TextEdit { return it.Inverse })
}

// Redo is the mirror of Undo, replaying forward edits.
func (m *Manager) Redo() ([]edit.TextEdit, rope.Point, bool) {
	return m.unwind(&m.redo, &m.undo, func(it Item) edit.TextEdit { return it.Fwd })
}

func (m *Manager) unwind(from, to *[]Item, pick func(Item) edit.TextEdit) ([]edit.TextEdit, rope.Point, bool) {
	if len(*from) > 0 && (*from)[len(*from)-1].Kind == KindStop {
		*from = (*from)[:len(*from)-1]
	}

	var applied []edit.TextEdit
	var moved []Item
	var lastEnd rope.Point
	ok := false
	for len(*from) > 0 {
		top := (*from)[len(*from)-1]
		if top.Kind == KindStop {
			break
		}
		*from = (*from)[:len(*from)-1]
		e := pick(top)
		applied = append(applied, e)
		lastEnd = e.NewEnd
		moved = append(moved, top)
		ok = true
	}
	if !ok {
		return nil, rope.Point{}, false
	}

	if len(*to) == 0 || (*to)[len(*to)-1].Kind != KindStop {
		*to = append(*to, Item{Kind: KindStop})
	}
	*to = append(*to, moved...)
	return applied, lastEnd, true
}

// ExternalCursorMove adds a Stop unless one is already on top, per
// §4.H's non-undoable-action rule. It clears nothing itself; the
// caller clears edit.Stacks.
func (m *Manager) ExternalCursorMove() {
	if !m.topIsStop() {
		m.undo = append(m.undo, Item{Kind: KindStop})
	}
}

// Len reports the undo stack's current length, for tests and
// diagnostics.
func (m *Manager) Len() int { return len(m.undo) }
