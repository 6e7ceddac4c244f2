package easylog

import "strings"

// Candidate is a validated identifier chain together with where it sits.
// Start and Cursor are byte offsets within the source line; both are zero
// in selection mode.
type Candidate struct {
	Mode   Mode
	Chain  Chain
	Start  int
	Cursor int
}

// Extract checks the language and pulls a validated candidate out of src.
func Extract(languageID string, src Source) (Candidate, error) {
	if err := CheckLanguage(languageID); err != nil {
		return Candidate{}, err
	}

	switch src.Mode {
	case ModeSelection:
		return extractSelection(src.Text)
	default:
		return extractCursor(src.Text, src.Column)
	}
}

// extractSelection treats the trimmed selection as one identifier.
// Dots are not split here, so a.b is rejected.
func extractSelection(text string) (Candidate, error) {
	name := strings.TrimSpace(text)
	if name == "" {
		return Candidate{}, newReject(ErrEmptySelection, "")
	}
	if !ValidIdentifier(name) {
		return Candidate{}, newReject(ErrInvalidIdentifier, name)
	}
	return Candidate{Mode: ModeSelection, Chain: Chain{name}}, nil
}

func extractCursor(line string, column int) (Candidate, error) {
	start, end, ok := WordRangeAt(line, column)
	if !ok {
		return Candidate{}, newReject(ErrNoWordAtCursor, "")
	}

	chain, err := ParseChain(line[start:end])
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{
		Mode:   ModeCursor,
		Chain:  chain,
		Start:  start,
		Cursor: clampColumn(line, column),
	}, nil
}

// WordRangeAt returns the maximal run of identifier and dot characters
// touching column: the run may end at column or start at it.
func WordRangeAt(line string, column int) (start, end int, ok bool) {
	column = clampColumn(line, column)

	start = column
	for start > 0 && isWordChar(line[start-1]) {
		start--
	}
	end = column
	for end < len(line) && isWordChar(line[end]) {
		end++
	}
	return start, end, start < end
}

func clampColumn(line string, column int) int {
	if column < 0 {
		return 0
	}
	if column > len(line) {
		return len(line)
	}
	return column
}
