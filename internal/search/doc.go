// Package search implements Boyer-Moore-Horspool substring search
// over a rope.Rope, plus the search popup's wrap-around match cursor.
package search
