// Package history implements the Stop-separated undo/redo stack of
// §4.H: a chronological sequence of inverse edits and Stop markers,
// with a stop-before policy, an adjacent-edit merge rule, and a
// max-length eviction policy that never leaves the stack beginning
// mid-transaction.
package history
