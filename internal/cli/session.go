package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/output"
)

// Session is the interactive menu loop.
type Session struct {
	registry *commands.Registry
	env      *commands.Env
}

// NewSession creates a session dispatching menu choices to registry.
func NewSession(registry *commands.Registry, env *commands.Env) *Session {
	return &Session{registry: registry, env: env}
}

// Run shows the menu until the user exits or input ends.
// End of input is a normal exit. Any other error is returned as-is and
// ends the session; the task file already holds every completed mutation.
func (s *Session) Run(ctx context.Context) error {
	menu := s.registry.Menu()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		output.FormatMenu(s.env.Out, menu)
		choice, err := s.env.Prompt.Line("Choose an option: ")
		if err != nil {
			return s.endOfInput(err)
		}

		cmd, ok := s.registry.Find(strings.TrimSpace(choice))
		if !ok {
			fmt.Fprintln(s.env.Out, output.InvalidChoice)
			continue
		}

		s.env.Log.Debugf("menu: %s (%s)", cmd.Key(), cmd.Synopsis())
		action, err := cmd.Run(ctx, s.env)
		if err != nil {
			return s.endOfInput(err)
		}
		if action == commands.Quit {
			return nil
		}
	}
}

// endOfInput turns io.EOF into a clean exit, leaving the cursor on a fresh line.
func (s *Session) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.env.Out)
		return nil
	}
	return err
}
