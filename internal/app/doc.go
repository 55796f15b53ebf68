// Package app wires the demos together. It owns the logger, the factory
// registry and the lifecycle of each program, decoupled from any specific
// entrypoint like a CLI.
package app
