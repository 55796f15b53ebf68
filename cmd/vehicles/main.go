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

// main is the entrypoint for the vehicle factory demo.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background(), os.Stderr, os.Args[1:]); err != nil {
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
func run(ctx context.Context, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.ParseVehicles(args, logW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	_, err = app.NewApp(logW, appConfig).RunVehicles(ctx)
	return err
}
