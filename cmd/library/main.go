package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/gopatterns/internal/app"
	"github.com/vk/gopatterns/internal/cli"
)

// main is the entrypoint for the interactive library manager. Prompts go to
// stdout, informational records to stderr.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// No signal handling: Ctrl-C terminates the process at any prompt.
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, in io.Reader, outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.ParseLibrary(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.NewApp(logW, appConfig).RunLibrary(ctx, in, outW)
}
