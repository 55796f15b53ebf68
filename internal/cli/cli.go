package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/gopatterns/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// logFlags are the flags every binary shares.
type logFlags struct {
	format *string
	level  *string
}

func newFlagSet(name, usage string, output io.Writer) (*flag.FlagSet, logFlags) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	lf := logFlags{
		format: flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'."),
		level:  flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'."),
	}
	return flagSet, lf
}

// parse runs the flag set and maps its failures onto exit semantics.
func parse(flagSet *flag.FlagSet, args []string) (bool, error) {
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}
	return false, nil
}

func buildConfig(cfg app.Config, lf logFlags) (*app.Config, error) {
	cfg.LogFormat = strings.ToLower(*lf.format)
	cfg.LogLevel = strings.ToLower(*lf.level)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, nil
}

// ParseVehicles processes the vehicle demo's arguments. It returns a
// populated Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func ParseVehicles(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet, lf := newFlagSet("vehicles", `
Vehicles - builds cars and motorcycles through region factories and starts them.

Usage:
  vehicles [options]

Options:
`, output)

	planFlag := flagSet.String("plan", "", "Path to an HCL fleet plan file or directory. Defaults to the built-in demo plan.")
	regionFlag := flagSet.String("region", "", "Only run the factory registered under this region key (e.g. 'us', 'eu').")

	shouldExit, err := parse(flagSet, args)
	if shouldExit || err != nil {
		return nil, shouldExit, err
	}

	config, err := buildConfig(app.Config{
		PlanPath: *planFlag,
		Region:   strings.TrimSpace(*regionFlag),
	}, lf)
	return config, false, err
}

// ParseLibrary processes the library manager's arguments.
func ParseLibrary(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet, lf := newFlagSet("library", `
Library - an in-memory book library driven by interactive commands.

Usage:
  library [options]

Commands (read from standard input):
  add      prompt for title, author and year, then add the book
  remove   prompt for a title and remove every book carrying it
  show     list the books in the order they were added
  exit     leave the program (end of input does the same)

Options:
`, output)

	shouldExit, err := parse(flagSet, args)
	if shouldExit || err != nil {
		return nil, shouldExit, err
	}

	config, err := buildConfig(app.Config{}, lf)
	return config, false, err
}
