package popup

import (
	"time"

	"github.com/lilypad-editor/core/internal/rope"
)

// HoverStillDelay is how long the pointer must stay still before a
// documentation request fires.
const HoverStillDelay = 500 * time.Millisecond

// Documentation is the hover-documentation popup's state.
type Documentation struct {
	at        rope.Point
	since     time.Time
	requested bool
	Content   string
}

// PointerMoved records a new pointer position at now, resetting the
// still timer if it actually moved.
func (d *Documentation) PointerMoved(at rope.Point, now time.Time) {
	if at == d.at {
		return
	}
	d.at = at
	d.since = now
	d.requested = false
	d.Content = ""
}

// ReadyToRequest reports whether the pointer has been still at its
// current position for at least HoverStillDelay and no request has
// been issued yet for it.
func (d *Documentation) ReadyToRequest(now time.Time) (rope.Point, bool) {
	if d.requested || d.since.IsZero() {
		return rope.Point{}, false
	}
	if now.Sub(d.since) < HoverStillDelay {
		return rope.Point{}, false
	}
	return d.at, true
}

// MarkRequested records that a hover request has been sent for the
// current pointer position, so ReadyToRequest won't fire again until
// the pointer moves.
func (d *Documentation) MarkRequested() { d.requested = true }

// SetContent stores markdown hover content returned by the host for at.
func (d *Documentation) SetContent(at rope.Point, content string) {
	if at != d.at {
		return
	}
	d.Content = content
}

// Close clears the popup.
func (d *Documentation) Close() {
	*d = Documentation{}
}
