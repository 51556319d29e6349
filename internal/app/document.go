package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/hexstorm/internal/engine"
)

// Document is an open file and its editing session.
type Document struct {
	// ID identifies the document for the lifetime of the process.
	ID uuid.UUID

	// Path is the absolute file path.
	Path string

	// Name is the display name.
	Name string

	// Engine is the editing session.
	Engine *engine.Engine
}

// NewDocument creates a document for path over data.
func NewDocument(path string, data []byte, opts ...engine.Option) *Document {
	return &Document{
		ID:     uuid.New(),
		Path:   path,
		Name:   filepath.Base(path),
		Engine: engine.New(data, opts...),
	}
}

// OpenDocument reads the file at path into a new document.
func OpenDocument(path string, opts ...engine.Option) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	return NewDocument(abs, data, opts...), nil
}

// IsDirty reports unsaved changes.
func (d *Document) IsDirty() bool {
	return d.Engine.IsDirty()
}

// Save overwrites the file with the session buffer.
func (d *Document) Save() error {
	return d.Engine.Save(FileStore{Path: d.Path})
}

// SaveAs writes the session buffer to path and, on success, makes path the
// document's file. path must be absolute.
func (d *Document) SaveAs(path string) error {
	if err := d.Engine.Save(FileStore{Path: path}); err != nil {
		return err
	}
	d.Path = path
	d.Name = filepath.Base(path)
	return nil
}

// FileStore writes whole buffers to a file, keeping its permission bits.
type FileStore struct {
	Path string
}

// Write replaces the file contents with data.
func (s FileStore) Write(data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(s.Path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(s.Path, data, mode)
}

// DocumentManager manages all open documents. It is owned by the event
// loop and is not safe for concurrent use.
type DocumentManager struct {
	documents map[string]*Document // path -> document
	active    *Document
	order     []string // open order, for tab display and cycling
}

// NewDocumentManager creates a new document manager.
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*Document),
	}
}

// Open opens the file at path, or activates it if already open.
// The second result is false when an existing document was reused.
func (dm *DocumentManager) Open(path string, opts ...engine.Option) (*Document, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}

	if doc, exists := dm.documents[abs]; exists {
		dm.active = doc
		return doc, false, nil
	}

	doc, err := OpenDocument(abs, opts...)
	if err != nil {
		return nil, false, err
	}
	dm.Add(doc)
	return doc, true, nil
}

// Add registers doc and makes it active. An open document with the same
// path is replaced.
func (dm *DocumentManager) Add(doc *Document) {
	if _, exists := dm.documents[doc.Path]; exists {
		dm.remove(doc.Path)
	}
	dm.documents[doc.Path] = doc
	dm.order = append(dm.order, doc.Path)
	dm.active = doc
}

// Rename re-keys doc, registered under oldPath, to its current Path. The
// tab keeps its place. Returns ErrAlreadyOpen if another document holds
// the new path.
func (dm *DocumentManager) Rename(oldPath string, doc *Document) error {
	if dm.documents[oldPath] != doc {
		return ErrDocumentNotFound
	}
	if oldPath == doc.Path {
		return nil
	}
	if _, exists := dm.documents[doc.Path]; exists {
		return ErrAlreadyOpen
	}
	delete(dm.documents, oldPath)
	dm.documents[doc.Path] = doc
	for i, p := range dm.order {
		if p == oldPath {
			dm.order[i] = doc.Path
			break
		}
	}
	return nil
}

// Close closes a document by path.
func (dm *DocumentManager) Close(path string) error {
	if _, exists := dm.documents[path]; !exists {
		return ErrDocumentNotFound
	}
	dm.remove(path)
	return nil
}

// remove drops path; the previous tab becomes active if path was active.
func (dm *DocumentManager) remove(path string) {
	doc := dm.documents[path]
	delete(dm.documents, path)

	idx := -1
	for i, p := range dm.order {
		if p == path {
			idx = i
			break
		}
	}
	if idx >= 0 {
		dm.order = append(dm.order[:idx], dm.order[idx+1:]...)
	}

	if dm.active != doc {
		return
	}
	switch {
	case len(dm.order) == 0:
		dm.active = nil
	case idx > 0:
		dm.active = dm.documents[dm.order[idx-1]]
	default:
		dm.active = dm.documents[dm.order[0]]
	}
}

// Active returns the currently active document.
func (dm *DocumentManager) Active() *Document {
	return dm.active
}

// Get returns a document by path.
func (dm *DocumentManager) Get(path string) (*Document, bool) {
	doc, exists := dm.documents[path]
	return doc, exists
}

// All returns all open documents in open order.
func (dm *DocumentManager) All() []*Document {
	docs := make([]*Document, 0, len(dm.order))
	for _, path := range dm.order {
		docs = append(docs, dm.documents[path])
	}
	return docs
}

// Count returns the number of open documents.
func (dm *DocumentManager) Count() int {
	return len(dm.documents)
}

// DirtyDocuments returns all documents with unsaved changes, in open order.
func (dm *DocumentManager) DirtyDocuments() []*Document {
	var dirty []*Document
	for _, path := range dm.order {
		if doc := dm.documents[path]; doc.IsDirty() {
			dirty = append(dirty, doc)
		}
	}
	return dirty
}

// HasDirty returns true if any document has unsaved changes.
func (dm *DocumentManager) HasDirty() bool {
	return len(dm.DirtyDocuments()) > 0
}

// Next activates and returns the next document, wrapping around.
func (dm *DocumentManager) Next() *Document {
	return dm.cycle(1)
}

// Previous activates and returns the previous document, wrapping around.
func (dm *DocumentManager) Previous() *Document {
	return dm.cycle(-1)
}

func (dm *DocumentManager) cycle(step int) *Document {
	if len(dm.order) == 0 || dm.active == nil {
		return nil
	}
	current := -1
	for i, path := range dm.order {
		if path == dm.active.Path {
			current = i
			break
		}
	}
	if current == -1 {
		return dm.active
	}
	n := len(dm.order)
	dm.active = dm.documents[dm.order[(current+step+n)%n]]
	return dm.active
}
