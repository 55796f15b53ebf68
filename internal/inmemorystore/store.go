package inmemorystore

import (
	"context"
	"slices"
	"sync"

	"github.com/vk/gopatterns/internal/ctxlog"
	"github.com/vk/gopatterns/internal/library"
)

// Store is an in-memory, ordered implementation of library.Library.
type Store struct {
	mu    sync.RWMutex
	books []library.Book
}

var _ library.Library = (*Store)(nil)

// New creates a new, empty store.
func New() *Store {
	return &Store{}
}

// AddBook appends book to the end of the collection.
func (s *Store) AddBook(ctx context.Context, book library.Book) {
	s.mu.Lock()
	s.books = append(s.books, book)
	s.mu.Unlock()

	ctxlog.FromContext(ctx).Info("Added book: " + book.String())
}

// RemoveBook drops every book titled exactly title (case-sensitive).
func (s *Store) RemoveBook(ctx context.Context, title string) bool {
	s.mu.Lock()
	before := len(s.books)
	kept := make([]library.Book, 0, before)
	for _, b := range s.books {
		if b.Title != title {
			kept = append(kept, b)
		}
	}
	s.books = kept
	removed := len(kept) < before
	s.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	if removed {
		logger.Info("Removed book with title: "+title, "count", before-len(kept))
	} else {
		logger.Info("Book with title '" + title + "' not found")
	}
	return removed
}

// ShowBooks logs every book in insertion order and returns the formatted
// lines. An empty store logs library.MsgEmpty and returns nil.
func (s *Store) ShowBooks(ctx context.Context) []string {
	books := s.Books()
	logger := ctxlog.FromContext(ctx)

	if len(books) == 0 {
		logger.Info(library.MsgEmpty)
		return nil
	}

	lines := make([]string, 0, len(books))
	logger.Info(library.MsgContents, "count", len(books))
	for _, b := range books {
		line := b.String()
		logger.Info(line)
		lines = append(lines, line)
	}
	return lines
}

// Books returns a copy of the collection in insertion order.
func (s *Store) Books() []library.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.books)
}

// Len returns the number of stored books.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
