// Package cursor provides cursor and selection state for a document.
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head > anchor) or
// backward (head < anchor).
//
// Basic usage:
//
//	cs := cursor.NewCursorSetAt(10)
//	cs.SetPrimary(cursor.NewSelection(4, 9))
//	if cs.HasSelection() {
//	    r := cs.Primary().Range()
//	    ...
//	}
package cursor
