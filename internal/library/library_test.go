package library

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingLibrary captures the calls the Manager forwards.
type recordingLibrary struct {
	added   []Book
	removed []string
	shown   int
}

func (r *recordingLibrary) AddBook(_ context.Context, b Book) { r.added = append(r.added, b) }

func (r *recordingLibrary) RemoveBook(_ context.Context, title string) bool {
	r.removed = append(r.removed, title)
	return title == "hit"
}

func (r *recordingLibrary) ShowBooks(context.Context) []string {
	r.shown++
	return []string{"line"}
}

func TestManager_ForwardsToLibrary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lib := &recordingLibrary{}
	m := NewManager(lib)

	m.AddBook(ctx, "Dune", "Herbert,F", "1965")
	assert.Equal(t, []Book{{Title: "Dune", Author: "Herbert,F", Year: "1965"}}, lib.added)

	assert.True(t, m.RemoveBook(ctx, "hit"))
	assert.False(t, m.RemoveBook(ctx, "miss"))
	assert.Equal(t, []string{"hit", "miss"}, lib.removed)

	assert.Equal(t, []string{"line"}, m.ShowBooks(ctx))
	assert.Equal(t, 1, lib.shown)
}

func TestBook_String(t *testing.T) {
	t.Parallel()

	b := Book{Title: "Dune", Author: "Herbert,F", Year: "nineteen sixty-five"}
	assert.Equal(t, "Title: Dune, Author: Herbert,F, Year: nineteen sixty-five", b.String())
}
