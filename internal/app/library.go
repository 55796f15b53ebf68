package app

import (
	"context"
	"io"

	"github.com/vk/gopatterns/internal/inmemorystore"
	"github.com/vk/gopatterns/internal/library"
	"github.com/vk/gopatterns/internal/repl"
)

// RunLibrary runs the interactive library manager over in/out until the
// user exits or the input ends. The collection lives only for this call.
func (a *App) RunLibrary(ctx context.Context, in io.Reader, out io.Writer) error {
	ctx = a.withLogger(ctx)
	a.logger.Debug("RunLibrary started.")

	store := inmemorystore.New()
	loop := repl.New(in, out, library.NewManager(store))
	if err := loop.Run(ctx); err != nil {
		return err
	}

	a.logger.Debug("RunLibrary finished.", "books_left", store.Len())
	return nil
}
