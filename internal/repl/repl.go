package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/gopatterns/internal/ctxlog"
)

// Prompts written to the output stream.
const (
	PromptCommand     = "Enter command (add, remove, show, exit): "
	PromptTitle       = "Enter book title: "
	PromptAuthor      = "Enter book author: "
	PromptYear        = "Enter book year: "
	PromptRemoveTitle = "Enter book title to remove: "
)

// Informational records emitted by the loop itself.
const (
	MsgWelcome        = "Welcome to the Library Management System!"
	MsgGoodbye        = "Goodbye!"
	MsgInvalidCommand = "Invalid command. Please try again."
	MsgInputClosed    = "Input closed, exiting."
)

// State is the loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Manager is the capability the loop drives. *library.Manager satisfies it.
type Manager interface {
	AddBook(ctx context.Context, title, author, year string)
	RemoveBook(ctx context.Context, title string) bool
	ShowBooks(ctx context.Context) []string
}

type handlerFunc func(ctx context.Context) error

// Loop is a synchronous read-dispatch loop over a line source.
type Loop struct {
	reader   *bufio.Reader
	out      io.Writer
	manager  Manager
	state    State
	handlers map[string]handlerFunc
}

// New creates a loop reading commands from in and writing prompts to out.
func New(in io.Reader, out io.Writer, manager Manager) *Loop {
	l := &Loop{
		reader:  bufio.NewReader(in),
		out:     out,
		manager: manager,
		state:   StateRunning,
	}
	l.handlers = map[string]handlerFunc{
		"add":    l.add,
		"remove": l.remove,
		"show":   l.show,
		"exit":   l.exit,
	}
	return l
}

// State reports whether the loop is still running.
func (l *Loop) State() State {
	return l.state
}

// Run blocks until the exit command, end of input, a read error or context
// cancellation. End of input is a clean exit and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info(MsgWelcome)

	for l.state == StateRunning {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := l.prompt(PromptCommand)
		if err == nil {
			// A cancellation that arrived while blocked on input wins over the command.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			err = l.dispatch(ctx, strings.ToLower(line))
		}
		if errors.Is(err, io.EOF) {
			logger.Info(MsgInputClosed)
			return l.exit(ctx)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) dispatch(ctx context.Context, command string) error {
	handler, ok := l.handlers[command]
	if !ok {
		ctxlog.FromContext(ctx).Info(MsgInvalidCommand, "command", command)
		return nil
	}
	ctxlog.FromContext(ctx).Debug("Dispatching command.", "command", command)
	return handler(ctx)
}

func (l *Loop) add(ctx context.Context) error {
	title, err := l.prompt(PromptTitle)
	if err != nil {
		return err
	}
	author, err := l.prompt(PromptAuthor)
	if err != nil {
		return err
	}
	year, err := l.prompt(PromptYear)
	if err != nil {
		return err
	}
	l.manager.AddBook(ctx, title, author, year)
	return nil
}

func (l *Loop) remove(ctx context.Context) error {
	title, err := l.prompt(PromptRemoveTitle)
	if err != nil {
		return err
	}
	l.manager.RemoveBook(ctx, title)
	return nil
}

func (l *Loop) show(ctx context.Context) error {
	l.manager.ShowBooks(ctx)
	return nil
}

func (l *Loop) exit(ctx context.Context) error {
	ctxlog.FromContext(ctx).Info(MsgGoodbye)
	l.state = StateTerminated
	return nil
}

// prompt writes text and returns the next input line, trimmed. Lines have
// no length limit. It returns io.EOF once the input is exhausted; a final
// line without a newline is still returned first.
func (l *Loop) prompt(text string) (string, error) {
	if _, err := io.WriteString(l.out, text); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}
