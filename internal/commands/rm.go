package commands

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements menu option 4.
type RmCmd struct{}

func (c *RmCmd) Key() string      { return "4" }
func (c *RmCmd) Synopsis() string { return "Delete task" }

func (c *RmCmd) Run(ctx context.Context, env *Env) (Action, error) {
	if err := viewTasks(ctx, env); err != nil {
		return Quit, err
	}

	num, err := env.Prompt.Number("Enter task number to delete: ")
	if err != nil {
		return Quit, err
	}

	removed, err := env.Service.DeleteTask(ctx, num-1)
	if err != nil {
		if errors.Is(err, service.ErrInvalidIndex) {
			env.Log.Debugf("delete: task number %d out of range", num)
			fmt.Fprintln(env.Out, output.InvalidTaskNumber)
			return Continue, nil
		}
		return Quit, err
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "Deleted task: %s\n", removed.Description)
	}
	return Continue, nil
}
