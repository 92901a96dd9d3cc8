package commands

import (
	"context"
	"errors"
	"fmt"

	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements menu option 3.
type DoneCmd struct{}

func (c *DoneCmd) Key() string      { return "3" }
func (c *DoneCmd) Synopsis() string { return "Mark task as complete" }

func (c *DoneCmd) Run(ctx context.Context, env *Env) (Action, error) {
	if err := viewTasks(ctx, env); err != nil {
		return Quit, err
	}

	num, err := env.Prompt.Number("Enter task number to mark complete: ")
	if err != nil {
		return Quit, err
	}

	task, err := env.Service.CompleteTask(ctx, num-1)
	if err != nil {
		if errors.Is(err, service.ErrInvalidIndex) {
			env.Log.Debugf("complete: task number %d out of range", num)
			fmt.Fprintln(env.Out, output.InvalidTaskNumber)
			return Continue, nil
		}
		return Quit, err
	}

	if !env.Config.Quiet {
		fmt.Fprintf(env.Out, "Task marked as complete: %s\n", task.Description)
	}
	return Continue, nil
}
