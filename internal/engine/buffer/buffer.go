package buffer

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer holds document text with a line index.
// Content is stored with LF line endings and each line remembers its own
// terminator, so Export reproduces untouched lines byte for byte. Newlines
// inserted as bare LF take the buffer's line ending style.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lineStarts []ByteOffset
	eols       []LineEnding // terminator of each line but the last
	revisionID RevisionID
	lineEnding LineEnding
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lineStarts: []ByteOffset{0},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.text, b.eols = splitLineEndings(s, LineEndingLF)
	b.reindex()
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
// The export line ending is detected from the content unless an option sets one.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	text := string(data)
	opts = append([]Option{WithDetectedLineEnding(text)}, opts...)
	return NewBufferFromString(text, opts...), nil
}

// splitLineEndings converts CRLF and CR to LF and returns the original
// terminator of every newline in order. A bare LF is recorded as lf.
func splitLineEndings(s string, lf LineEnding) (string, []LineEnding) {
	if !strings.ContainsAny(s, "\r\n") {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))
	var eols []LineEnding
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				eols = append(eols, LineEndingCRLF)
				i++
			} else {
				eols = append(eols, LineEndingCR)
			}
			sb.WriteByte('\n')
		case '\n':
			eols = append(eols, lf)
			sb.WriteByte('\n')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), eols
}

// lineOf returns the line containing offset. Caller must hold the lock.
func (b *Buffer) lineOf(offset ByteOffset) int {
	return sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
}

// reindex rebuilds the line start table. Caller must hold the write lock.
func (b *Buffer) reindex() {
	starts := b.lineStarts[:0]
	starts = append(starts, 0)
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	b.lineStarts = starts
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Export returns the content with each line's own terminator restored.
func (b *Buffer) Export() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	allLF := true
	for _, le := range b.eols {
		if le != LineEndingLF {
			allLF = false
			break
		}
	}
	if allLF {
		return b.text
	}

	var sb strings.Builder
	sb.Grow(len(b.text) + len(b.eols))
	for i, le := range b.eols {
		sb.WriteString(b.text[b.lineStarts[i]:b.lineEnd(uint32(i))])
		sb.WriteString(le.Sequence())
	}
	sb.WriteString(b.text[b.lineStarts[len(b.eols)]:])
	return sb.String()
}

// TextRange returns text in the given byte range.
// The range is clamped to the buffer.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start = b.clamp(start)
	end = b.clamp(end)
	if start >= end {
		return ""
	}
	return b.text[start:end]
}

// Len returns the total byte length of the buffer.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uint32(len(b.lineStarts))
}

// LineText returns the text of a specific line (without newline).
func (b *Buffer) LineText(line uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text[b.lineStart(line):b.lineEnd(line)]
}

// LineStartOffset returns the byte offset of the start of a line.
// Lines past the end resolve to the last line.
func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineStart(line)
}

// LineEndOffset returns the byte offset of the end of a line, before its newline.
func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnd(line)
}

func (b *Buffer) lineStart(line uint32) ByteOffset {
	if int(line) >= len(b.lineStarts) {
		line = uint32(len(b.lineStarts) - 1)
	}
	return b.lineStarts[line]
}

func (b *Buffer) lineEnd(line uint32) ByteOffset {
	if int(line)+1 >= len(b.lineStarts) {
		return ByteOffset(len(b.text))
	}
	// Exclude the newline itself.
	return b.lineStarts[line+1] - 1
}

func (b *Buffer) clamp(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > ByteOffset(len(b.text)) {
		return ByteOffset(len(b.text))
	}
	return offset
}

// OffsetToPoint converts a byte offset to a line/column point.
// Offsets outside the buffer are clamped.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()

	offset = b.clamp(offset)
	line := b.lineOf(offset)
	return Point{
		Line:   uint32(line),
		Column: uint32(offset - b.lineStarts[line]),
	}
}

// PointToOffset converts a line/column point to a byte offset.
// The column is clamped to the line length, so a very large column
// addresses the end of the line.
func (b *Buffer) PointToOffset(point Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()

	start := b.lineStart(point.Line)
	end := b.lineEnd(point.Line)
	if int(point.Line) >= len(b.lineStarts) {
		return end
	}
	if ByteOffset(point.Column) > end-start {
		return end
	}
	return start + ByteOffset(point.Column)
}

// Write Operations

// Insert inserts text at the given offset.
func (b *Buffer) Insert(offset ByteOffset, text string) (EditResult, error) {
	return b.ApplyEdit(NewInsert(offset, text))
}

// ApplyEdit applies a single edit and returns information about the change.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r := edit.Range
	if !r.IsValid() {
		return EditResult{}, ErrRangeInvalid
	}
	if r.Start < 0 || r.End > ByteOffset(len(b.text)) {
		return EditResult{}, ErrOffsetOutOfRange
	}

	newText, newEOLs := splitLineEndings(edit.NewText, b.lineEnding)
	oldText := b.text[r.Start:r.End]

	// The terminators of lines first..last-1 are removed with the range.
	first, last := b.lineOf(r.Start), b.lineOf(r.End)
	eols := make([]LineEnding, 0, len(b.eols)-(last-first)+len(newEOLs))
	eols = append(eols, b.eols[:first]...)
	eols = append(eols, newEOLs...)
	eols = append(eols, b.eols[last:]...)

	b.text = b.text[:r.Start] + newText + b.text[r.End:]
	b.eols = eols
	b.reindex()
	b.revisionID = NewRevisionID()

	return EditResult{
		OldRange: r,
		NewRange: Range{Start: r.Start, End: r.Start + ByteOffset(len(newText))},
		OldText:  oldText,
		Delta:    ByteOffset(len(newText)) - r.Len(),
	}, nil
}

// Metadata

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineEnding returns the style given to newlines inserted as bare LF.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}
