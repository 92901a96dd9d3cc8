// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/log"
	"todo/internal/prompt"
	"todo/internal/service"
)

// Action tells the session loop what to do after a command ran.
type Action int

const (
	// Continue shows the menu again.
	Continue Action = iota

	// Quit ends the session.
	Quit
)

// Env is everything a command may touch while it runs.
type Env struct {
	Config  *config.Config
	Service service.Service
	Prompt  *prompt.Prompter
	Out     io.Writer
	Log     *log.Logger
}

// Command defines the interface for menu commands.
type Command interface {
	// Key returns the menu entry the user types to select the command.
	Key() string

	// Synopsis returns the menu label.
	Synopsis() string

	// Run executes the command.
	// User mistakes such as an out-of-range task number are reported on
	// env.Out and return Continue with a nil error.
	// A non-nil error is fatal to the session: storage failures, or io.EOF
	// when input ends mid-command.
	Run(ctx context.Context, env *Env) (Action, error)
}
