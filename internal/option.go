package internal

import (
	"io"

	"github.com/starford/laguz/internal/command"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type runMode int

const (
	modeCommand runMode = iota
	modeServe
	modeMCP
)

type application struct {
	config  *Config
	command command.Command
	mode    runMode
	in      io.Reader
	out     io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithCommand sets the notebook command to execute.
func WithCommand(cmd command.Command) Option {
	return func(a *application) {
		a.command = cmd
		a.mode = modeCommand
	}
}

// WithServe switches the run into HTTP API server mode.
func WithServe() Option {
	return func(a *application) {
		a.mode = modeServe
	}
}

// WithMCP switches the run into MCP stdio server mode.
func WithMCP() Option {
	return func(a *application) {
		a.mode = modeMCP
	}
}

// WithInput overrides the interactive note input stream (default stdin).
func WithInput(r io.Reader) Option {
	return func(a *application) {
		a.in = r
	}
}

// WithOutput overrides the report output stream (default stdout).
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}
