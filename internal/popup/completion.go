package popup

import (
	"strings"
	"unicode"

	"github.com/lilypad-editor/core/internal/edit"
	"github.com/lilypad-editor/core/internal/rope"
)

// MaxCompletionItems bounds how many items the completion popup shows
// at once; the tail of a larger prefix-sorted list is truncated.
const MaxCompletionItems = 10

// maxRawCompletionItems is the noise threshold above which a raw host
// response is discarded outright rather than partitioned.
const maxRawCompletionItems = 100

// CompletionItem is one entry offered by the host.
type CompletionItem struct {
	Label     string
	InsertText string
}

// Completion is the completion popup's state.
type Completion struct {
	Items     []CompletionItem
	Selected  int
	Anchor    rope.Point
	Triggered bool // set by Request; cleared by Accept or Close
}

// Request arms the popup to trigger completion on the next frame at
// anchor, the point the request was made from.
func (c *Completion) Request(anchor rope.Point) {
	c.Anchor = anchor
	c.Triggered = true
}

// Accept processes a raw item list from the host: noisy (>100)
// results are discarded, otherwise the items are partitioned into
// those whose label case-insensitively prefixes wordLeft first, then
// the rest, each group keeping its original order, then truncated to
// MaxCompletionItems.
func (c *Completion) Accept(raw []CompletionItem, wordLeft string) {
	c.Triggered = false
	if len(raw) > maxRawCompletionItems {
		c.Items = nil
		return
	}

	prefix := strings.ToLower(wordLeft)
	var matched, rest []CompletionItem
	for _, item := range raw {
		if prefix != "" && strings.HasPrefix(strings.ToLower(item.Label), prefix) {
			matched = append(matched, item)
		} else {
			rest = append(rest, item)
		}
	}
	combined := append(matched, rest...)
	if len(combined) > MaxCompletionItems {
		combined = combined[:MaxCompletionItems]
	}
	c.Items = combined
	c.Selected = 0
}

// Close clears the popup, per the dismissal triggers of §4.K (cursor
// move, mouse click, escape, start-of-line left-arrow).
func (c *Completion) Close() {
	c.Items = nil
	c.Selected = 0
	c.Triggered = false
}

// Active reports whether the popup currently has items to show.
func (c *Completion) Active() bool { return len(c.Items) > 0 }

// Confirm builds the edit that replaces the word immediately left of
// cursor with the selected item's insertion text, re-indenting any
// embedded newlines to currentIndent.
func (c *Completion) Confirm(cursor rope.Point, wordLeftStart rope.Point, currentIndent string) (*edit.TextEdit, bool) {
	if !c.Active() {
		return nil, false
	}
	item := c.Items[c.Selected]
	text := strings.ReplaceAll(item.InsertText, "\n", "\n"+currentIndent)

	rng := rope.Range{Start: wordLeftStart, End: cursor}
	newEnd := endOfInsertedText(wordLeftStart, text)
	return &edit.TextEdit{Text: text, Range: rng, NewEnd: newEnd, Origin: edit.OriginLocal}, true
}

func endOfInsertedText(start rope.Point, text string) rope.Point {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return rope.Point{Line: start.Line, Col: start.Col + uint32(runeLen(lines[0]))}
	}
	last := lines[len(lines)-1]
	return rope.Point{Line: start.Line + uint32(len(lines)-1), Col: uint32(runeLen(last))}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// IsWordRune reports whether r is part of a completion prefix word:
// any Unicode letter or digit, or '_'. This is wider than the rope
// package's word character, which is ASCII-only.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
