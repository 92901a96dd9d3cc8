package commands

import (
	"context"
	"fmt"

	"todo/internal/output"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements menu option 5.
type ExitCmd struct{}

func (c *ExitCmd) Key() string      { return "5" }
func (c *ExitCmd) Synopsis() string { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, env *Env) (Action, error) {
	if !env.Config.Quiet {
		fmt.Fprintln(env.Out, output.Goodbye)
	}
	return Quit, nil
}
