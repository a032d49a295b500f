package edit

import "github.com/lilypad-editor/core/internal/rope"

// TAB is the fixed indent step.
const TAB = 4

// Origin controls whether applying an edit notifies the host.
type Origin int

const (
	OriginLocal Origin = iota
	OriginHost
)

// TextEdit describes one replacement to apply to a rope.
type TextEdit struct {
	Text   string
	Range  rope.Range
	NewEnd rope.Point
	Origin Origin
}

// Stacks holds the two auxiliary stacks paired-insertion threads
// through successive edits: InputIgnore remembers characters an
// auto-inserted closer is waiting to be typed through; PairedDelete
// remembers, per opener, whether it had an auto-inserted closer so
// Backspace can remove both in one keystroke.
type Stacks struct {
	InputIgnore  []rune
	PairedDelete []bool
}

func (s *Stacks) pushIgnore(r rune)  { s.InputIgnore = append(s.InputIgnore, r) }
func (s *Stacks) pushPaired(b bool)  { s.PairedDelete = append(s.PairedDelete, b) }

func (s *Stacks) peekIgnore() (rune, bool) {
	if len(s.InputIgnore) == 0 {
		return 0, false
	}
	return s.InputIgnore[len(s.InputIgnore)-1], true
}

func (s *Stacks) popIgnore() {
	if len(s.InputIgnore) > 0 {
		s.InputIgnore = s.InputIgnore[:len(s.InputIgnore)-1]
	}
}

func (s *Stacks) popPaired() (bool, bool) {
	if len(s.PairedDelete) == 0 {
		return false, false
	}
	v := s.PairedDelete[len(s.PairedDelete)-1]
	s.PairedDelete = s.PairedDelete[:len(s.PairedDelete)-1]
	return v, true
}

// Clear empties both auxiliary stacks, used on non-undoable cursor
// moves and externally-originated edits (§4.H).
func (s *Stacks) Clear() {
	s.InputIgnore = s.InputIgnore[:0]
	s.PairedDelete = s.PairedDelete[:0]
}
