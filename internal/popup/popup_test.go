package popup

import (
	"testing"
	"time"

	"github.com/lilypad-editor/core/internal/rope"
)

func TestCompletionAcceptDiscardsNoisyResults(t *testing.T) {
	var c Completion
	raw := make([]CompletionItem, 101)
	c.Accept(raw, "")
	if c.Active() {
		t.Fatalf("want >100 raw items discarded, got %d items", len(c.Items))
	}
}

func TestCompletionAcceptPartitionsByPrefix(t *testing.T) {
	var c Completion
	raw := []CompletionItem{
		{Label: "zeta"},
		{Label: "printer"},
		{Label: "Print"},
		{Label: "apple"},
	}
	c.Accept(raw, "pri")
	want := []string{"printer", "Print", "zeta", "apple"}
	if len(c.Items) != len(want) {
		t.Fatalf("want %d items, got %d", len(want), len(c.Items))
	}
	for i, label := range want {
		if c.Items[i].Label != label {
			t.Fatalf("item %d: want %q, got %q", i, label, c.Items[i].Label)
		}
	}
}

func TestCompletionAcceptTruncatesToTen(t *testing.T) {
	var c Completion
	raw := make([]CompletionItem, 15)
	for i := range raw {
		raw[i].Label = "x"
	}
	c.Accept(raw, "")
	if len(c.Items) != MaxCompletionItems {
		t.Fatalf("want truncated to %d, got %d", MaxCompletionItems, len(c.Items))
	}
}

func TestCompletionConfirmReindentsNewlines(t *testing.T) {
	c := Completion{Items: []CompletionItem{{Label: "tryex", InsertText: "try:\npass"}}}
	start := rope.Point{Line: 0, Col: 0}
	cursor := rope.Point{Line: 0, Col: 3}
	e, ok := c.Confirm(cursor, start, "    ")
	if !ok {
		t.Fatalf("want confirm to succeed")
	}
	want := "try:\n    pass"
	if e.Text != want {
		t.Fatalf("want %q, got %q", want, e.Text)
	}
	if e.NewEnd != (rope.Point{Line: 1, Col: 8}) {
		t.Fatalf("want cursor after reindented text, got %v", e.NewEnd)
	}
}

func TestCompletionConfirmOnEmptyPopupFails(t *testing.T) {
	var c Completion
	if _, ok := c.Confirm(rope.Point{}, rope.Point{}, ""); ok {
		t.Fatalf("want confirm to fail with no items")
	}
}

func TestDiagnosticHoverIgnoresRepeatOnSameID(t *testing.T) {
	var d Diagnostic
	d.Hover("d1", "first message")
	d.RequestFixes()
	d.Hover("d1", "first message")
	if !d.FixesRequested {
		t.Fatalf("want re-hovering the same diagnostic to keep FixesRequested set")
	}
}

func TestDiagnosticHoverResetsOnNewID(t *testing.T) {
	var d Diagnostic
	d.Hover("d1", "first")
	d.RequestFixes()
	d.SetFixes("d1", []string{"fix a"})
	d.Hover("d2", "second")
	if d.FixesRequested || len(d.Fixes) != 0 {
		t.Fatalf("want hovering a new diagnostic to clear fixes state, got %+v", d)
	}
}

func TestDocumentationReadyAfterStillDelay(t *testing.T) {
	var d Documentation
	base := time.Now()
	d.PointerMoved(rope.Point{Line: 1, Col: 1}, base)

	if _, ready := d.ReadyToRequest(base.Add(100 * time.Millisecond)); ready {
		t.Fatalf("want not ready before the still delay elapses")
	}
	at, ready := d.ReadyToRequest(base.Add(HoverStillDelay))
	if !ready || at != (rope.Point{Line: 1, Col: 1}) {
		t.Fatalf("want ready at the still point once the delay elapses, got %v ready=%v", at, ready)
	}
}

func TestDocumentationMovingResetsTimer(t *testing.T) {
	var d Documentation
	base := time.Now()
	d.PointerMoved(rope.Point{Line: 1, Col: 1}, base)
	d.PointerMoved(rope.Point{Line: 2, Col: 2}, base.Add(400*time.Millisecond))

	if _, ready := d.ReadyToRequest(base.Add(HoverStillDelay)); ready {
		t.Fatalf("want the timer to restart after the pointer moves")
	}
}
