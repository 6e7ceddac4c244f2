package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/dshills/easylog/internal/engine/buffer"
	"github.com/dshills/easylog/internal/engine/cursor"
)

// Document represents an open file with its editor state.
type Document struct {
	// Path is the absolute file path.
	Path string

	// Buffer holds the text.
	Buffer *buffer.Buffer

	// Cursors holds the selection state.
	Cursors *cursor.CursorSet

	// LanguageID is the detected language.
	LanguageID string

	// ReadOnly indicates the document cannot be edited.
	ReadOnly bool

	mode  os.FileMode
	saved buffer.RevisionID
}

// NewDocument creates a new document from a file path and its content.
func NewDocument(path string, content []byte, languageID string) *Document {
	buf, _ := buffer.NewBufferFromReader(bytes.NewReader(content))
	return &Document{
		Path:       path,
		Buffer:     buf,
		Cursors:    cursor.NewCursorSetAt(0),
		LanguageID: languageID,
		mode:       0o644,
		saved:      buf.RevisionID(),
	}
}

// Select places the primary selection from anchor to head. Points are
// clamped to the document.
func (d *Document) Select(anchor, head buffer.Point) {
	d.Cursors.SetPrimary(cursor.NewSelection(
		d.Buffer.PointToOffset(anchor),
		d.Buffer.PointToOffset(head),
	))
}

// IsModified returns true if the document changed since it was opened or
// last saved.
func (d *Document) IsModified() bool {
	return d.Buffer.RevisionID() != d.saved
}

// Content returns the full document content with its original line endings.
func (d *Document) Content() string {
	return d.Buffer.Export()
}

// Save writes the document back to its path.
func (d *Document) Save() error {
	if err := os.WriteFile(d.Path, []byte(d.Content()), d.mode); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.saved = d.Buffer.RevisionID()
	return nil
}

// DocumentManager manages open documents.
type DocumentManager struct {
	mu        sync.RWMutex
	documents map[string]*Document // absolute path -> document
	detect    func(path string) string
}

// NewDocumentManager creates a document manager. detect maps a path to a
// language id.
func NewDocumentManager(detect func(path string) string) *DocumentManager {
	if detect == nil {
		detect = func(string) string { return "plaintext" }
	}
	return &DocumentManager{
		documents: make(map[string]*Document),
		detect:    detect,
	}
}

// Open opens a document from a file.
// Returns the existing document if already open.
func (dm *DocumentManager) Open(path string) (*Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	dm.mu.Lock()
	defer dm.mu.Unlock()

	if doc, exists := dm.documents[absPath]; exists {
		return doc, nil
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}
	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	doc := NewDocument(absPath, content, dm.detect(absPath))
	doc.mode = info.Mode().Perm()
	doc.ReadOnly = info.Mode().Perm()&0o200 == 0

	dm.documents[absPath] = doc
	return doc, nil
}

// Get returns an open document by path.
func (dm *DocumentManager) Get(path string) (*Document, bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}

	dm.mu.RLock()
	defer dm.mu.RUnlock()
	doc, exists := dm.documents[absPath]
	return doc, exists
}
