// Package repl implements the library's interactive command loop.
//
// The loop reads one command per line from an io.Reader, prompts on an
// io.Writer, and dispatches to a Manager. It runs until the "exit" command
// or until the input is exhausted, which is treated the same as "exit".
package repl
