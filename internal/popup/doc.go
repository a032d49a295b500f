// Package popup holds the state-only models for the completion,
// diagnostic, and documentation popups of §4.K: what's displayed and
// when it's dismissed, with no rendering of its own.
package popup
