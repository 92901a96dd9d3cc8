package commands

import (
	"context"

	"todo/internal/output"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements menu option 2.
type ViewCmd struct{}

func (c *ViewCmd) Key() string      { return "2" }
func (c *ViewCmd) Synopsis() string { return "View all tasks" }

func (c *ViewCmd) Run(ctx context.Context, env *Env) (Action, error) {
	if err := viewTasks(ctx, env); err != nil {
		return Quit, err
	}
	return Continue, nil
}

// viewTasks prints the numbered task list. Done and rm show it before asking
// for a number.
func viewTasks(ctx context.Context, env *Env) error {
	tasks, err := env.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	output.FormatTasks(env.Out, tasks)
	return nil
}
