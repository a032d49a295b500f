package popup

// Diagnostic is the diagnostic popup's state: the message of the
// currently hovered diagnostic plus any fixes the host has returned
// for it.
type Diagnostic struct {
	ID             string
	Message        string
	Fixes          []string
	FixesRequested bool
}

// Hover shows message for id. If this is the first hover on id, the
// caller should issue a fixes request and call RequestFixes.
func (d *Diagnostic) Hover(id, message string) {
	if d.ID == id {
		return
	}
	d.ID = id
	d.Message = message
	d.Fixes = nil
	d.FixesRequested = false
}

// RequestFixes marks that a fixes request has been scheduled for the
// currently hovered diagnostic, so a second hover on the same id
// doesn't issue a duplicate request.
func (d *Diagnostic) RequestFixes() { d.FixesRequested = true }

// SetFixes records fixes returned by the host, ignoring a stale
// response for a diagnostic no longer hovered.
func (d *Diagnostic) SetFixes(id string, fixes []string) {
	if d.ID != id {
		return
	}
	d.Fixes = fixes
}

// Close clears the popup.
func (d *Diagnostic) Close() {
	*d = Diagnostic{}
}
