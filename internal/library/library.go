package library

import "context"

// Log messages emitted by Library implementations.
const (
	MsgEmpty    = "No books in library"
	MsgContents = "Library contents:"
)

// Library owns an ordered book collection.
type Library interface {
	// AddBook appends a book.
	AddBook(ctx context.Context, book Book)
	// RemoveBook drops every book whose title equals title exactly and
	// reports whether anything was removed.
	RemoveBook(ctx context.Context, title string) bool
	// ShowBooks logs the collection in insertion order and returns the
	// formatted lines, or nil when the collection is empty.
	ShowBooks(ctx context.Context) []string
}

// Manager forwards requests to a Library without holding book data itself.
type Manager struct {
	lib Library
}

// NewManager wraps lib.
func NewManager(lib Library) *Manager {
	return &Manager{lib: lib}
}

// AddBook builds a Book from its fields and hands it to the library.
func (m *Manager) AddBook(ctx context.Context, title, author, year string) {
	m.lib.AddBook(ctx, Book{Title: title, Author: author, Year: year})
}

func (m *Manager) RemoveBook(ctx context.Context, title string) bool {
	return m.lib.RemoveBook(ctx, title)
}

func (m *Manager) ShowBooks(ctx context.Context) []string {
	return m.lib.ShowBooks(ctx)
}
