package easylog

// Mode selects how the candidate identifier is found.
type Mode uint8

const (
	// ModeCursor expands around the cursor column on the current line.
	ModeCursor Mode = iota
	// ModeSelection uses the selected text.
	ModeSelection
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeCursor:
		return "cursor"
	case ModeSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// Source is the text the command inspects.
// In selection mode Text is the selected text and Column is unused.
// In cursor mode Text is the cursor's line and Column the cursor's byte
// offset within it.
type Source struct {
	Mode   Mode
	Text   string
	Column int
}

// SelectionSource creates a selection-mode source.
func SelectionSource(text string) Source {
	return Source{Mode: ModeSelection, Text: text}
}

// CursorSource creates a cursor-mode source for the given line and column.
func CursorSource(line string, column int) Source {
	return Source{Mode: ModeCursor, Text: line, Column: column}
}
